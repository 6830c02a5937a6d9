package store

import (
	"path/filepath"

	"github.com/chatmux-tools/chatmux/internal/paths"
)

func DBPath() string {
	return filepath.Join(paths.AppDataDir(), "store.db")
}
