// Package ui provides terminal output utilities including pager support.
//
// SECURITY NOTE: The pager functionality intentionally allows execution of
// arbitrary commands specified via --pager flag or config. This is standard
// behavior for CLI tools (similar to git, less, man) and requires local
// access to exploit. Users should only configure pagers they trust.
package ui

import (
	"fmt"
	"sync"

	"github.com/chatmux-tools/chatmux/internal/config"
)

var (
	pagerDisabled bool
	pagerOverride string
	quietMode     bool
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager flag).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager flag).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// EnableQuiet enables quiet mode globally (used by --quiet/-q flag).
// In quiet mode, non-essential output is suppressed.
func EnableQuiet() {
	pagerMu.Lock()
	quietMode = true
	pagerMu.Unlock()
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return quietMode
}

// IsPagerDisabled returns true if the pager is disabled.
func IsPagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

// PagerOverride returns the pager override command, if set.
func PagerOverride() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerOverride
}

// Printf prints formatted output unless quiet mode is enabled.
func Printf(format string, args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Printf(format, args...)
}

// Println prints a line unless quiet mode is enabled.
func Println(args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Println(args...)
}

// Print prints output unless quiet mode is enabled.
func Print(args ...any) (int, error) {
	if IsQuiet() {
		return 0, nil
	}
	return fmt.Print(args...)
}

// Pager displays content through a pager if appropriate, honoring the
// --no-pager and --pager flags, the configured pager and $PAGER.
func Pager(content string) {
	opts := []WriterOption{WithConfigGetter(config.Get)}
	if IsPagerDisabled() {
		opts = append(opts, WithPagerDisabled())
	}
	if override := PagerOverride(); override != "" {
		opts = append(opts, WithPagerOverride(override))
	}
	NewWriter(opts...).Pager(content)
}
