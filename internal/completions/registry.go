package completions

import (
	"os"
	"path/filepath"

	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

var handler *dispatch.Handler
var binaryPath string
var binaryName string

// RegisterHandler stores the CLI dispatch handler for the completion
// query and resolves the binary identity baked into generated scripts.
// Called from main after the tree is built.
func RegisterHandler(h *dispatch.Handler) {
	handler = h

	if exe, err := os.Executable(); err == nil {
		// Resolve symlinks to get the real path.
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
		binaryName = filepath.Base(binaryPath)
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
		binaryName = filepath.Base(os.Args[0])
	}

	if binaryName == "" {
		binaryName = "chatmux"
		binaryPath = "chatmux"
	}
}

// GetHandler returns the registered dispatch handler.
func GetHandler() *dispatch.Handler {
	return handler
}

// GetBinaryName returns the name of the binary (e.g. "chatmux").
func GetBinaryName() string {
	if binaryName == "" {
		return "chatmux"
	}
	return binaryName
}

// GetBinaryPath returns the full path to the binary.
func GetBinaryPath() string {
	if binaryPath == "" {
		return "chatmux"
	}
	return binaryPath
}
