// cmd/dnacode/main.go
package main

import (
	"dnacode/internal/app"
	"dnacode/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
