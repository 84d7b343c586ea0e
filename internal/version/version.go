package version

// Version is overridden at build time with -ldflags "-X dnacode/internal/version.Version=…".
var Version = "dev"
