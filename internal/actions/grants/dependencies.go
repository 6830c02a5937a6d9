package grants

import (
	"fmt"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/store"
	"github.com/chatmux-tools/chatmux/internal/ui"
)

// grantStore is the slice of the store the grant actions need.
type grantStore interface {
	domain.GrantStore
	Close() error
}

type Deps struct {
	OpenStore func() (grantStore, error)
	Printf    func(string, ...any) (int, error)
	Println   func(...any) (int, error)
	Pager     func(string)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore: func() (grantStore, error) {
			return store.New(store.DBPath())
		},
		Printf:  fmt.Printf,
		Println: fmt.Println,
		Pager:   ui.Pager,
	}
}
