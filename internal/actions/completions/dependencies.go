package completions

import "fmt"

type Deps struct {
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}
