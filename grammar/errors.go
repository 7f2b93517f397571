package grammar

import "fmt"

// LeftRecursionError is returned by ComputeFirst when a non-terminal is
// found to be (possibly indirectly) left-recursive.
type LeftRecursionError struct {
	NonTerminal Symbol
}

func (e *LeftRecursionError) Error() string {
	return fmt.Sprintf("grammar has left recursion in %s", e.NonTerminal)
}
