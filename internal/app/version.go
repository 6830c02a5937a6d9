package app

// Version is the chatmux release version, overridden at build time
// with -ldflags "-X .../internal/app.Version=v1.2.3".
var Version = "dev"
