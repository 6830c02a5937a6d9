package audit

import (
	"fmt"
	"strconv"

	"github.com/chatmux-tools/chatmux/internal/config"
	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/store"
	"github.com/chatmux-tools/chatmux/internal/ui"
	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

// auditStore is the slice of the store the audit actions need.
type auditStore interface {
	domain.AuditStore
	Close() error
}

type Deps struct {
	OpenStore    func() (auditStore, error)
	DefaultLimit func() int
	Styler       domain.Styler
	Printf       func(string, ...any) (int, error)
	Println      func(...any) (int, error)
	Pager        func(string)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore: func() (auditStore, error) {
			return store.New(store.DBPath())
		},
		DefaultLimit: configuredLimit,
		Styler:       style.NewStyler(),
		Printf:       fmt.Printf,
		Println:      fmt.Println,
		Pager:        ui.Pager,
	}
}

// configuredLimit resolves the audit_limit config key, falling back to
// 20 for unset or unusable values.
func configuredLimit() int {
	value, ok := config.Get("audit_limit")
	if !ok {
		return 20
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 20
	}
	return n
}
