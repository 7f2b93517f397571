package grammar

import "strings"

// Production is a single grammar rule Left -> Right. A Right of exactly one
// Symbol equal to Epsilon denotes the empty production. Productions are
// immutable once a Grammar has been built from them.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// IsEpsilon reports whether p is the empty production.
func (p Production) IsEpsilon() bool {
	return len(p.Right) == 1 && p.Right[0] == Epsilon
}

func (p Production) String() string {
	parts := make([]string, len(p.Right))
	for i, sym := range p.Right {
		parts[i] = sym.String()
	}
	return p.Left.String() + " -> " + strings.Join(parts, " ")
}
