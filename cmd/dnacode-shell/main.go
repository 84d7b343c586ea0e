// cmd/dnacode-shell/main.go
package main

import (
	"dnacode/internal/appshell"
	"dnacode/internal/shell"
)

func main() { appshell.MainInteractive(shell.RunContext) }
