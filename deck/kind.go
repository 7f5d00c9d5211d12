package deck

import "fmt"

// Kind is slide variant.
type Kind int

const (
	KindTitle Kind = iota
	KindContent
	KindTwoColumn
)

var kindNames = map[Kind]string{
	KindTitle:     "title",
	KindContent:   "content",
	KindTwoColumn: "two-column",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the known variants.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}
