// Package acceptor implements the table-driven stack automaton that checks a
// single input string against an already-analyzed grammar.Table.
package acceptor

import (
	"fmt"

	"github.com/dekarrin/ll1check/grammar"
	"github.com/dekarrin/ll1check/internal/util"
)

// Failure is one recorded diagnostic emitted during a run, at the 1-indexed
// input position it occurred at.
type Failure struct {
	Position int
	Message  string
}

// Result is the outcome of a single Accept call.
type Result struct {
	// Accepted is true iff no Failure was recorded and the stack was fully
	// consumed down to its sentinel.
	Accepted bool
	Failures []Failure
}

// Accept runs the panic-mode recovery stack automaton described for this
// module over input against the rule table built from g. The stack starts as
// [$, start] (start on top); input is read one code unit (rune) at a time
// with an implicit trailing $.
//
// The recovery policy is intentionally aggressive rather than minimal: on a
// terminal mismatch, the mismatched stack terminal is discarded without
// being pushed back, except that popping $ itself resets the stack to
// [$, start]. This matches the source's documented-anomalous behavior and is
// preserved verbatim rather than "fixed".
func Accept(g *grammar.Grammar, table *grammar.Table, input string) Result {
	runes := []rune(input)
	symbols := make([]grammar.Symbol, 0, len(runes)+1)
	for _, r := range runes {
		symbols = append(symbols, grammar.Term(string(r)))
	}
	symbols = append(symbols, grammar.EndOfInput)

	stack := &util.Stack[grammar.Symbol]{Of: []grammar.Symbol{grammar.EndOfInput, g.Start()}}

	var result Result
	k := 0
	for k < len(symbols) {
		c := symbols[k]
		X := stack.Pop()

		switch {
		case X.IsTerminal():
			switch {
			case X == grammar.Epsilon:
				// discard; does not advance input
			case X == c:
				k++
			default:
				result.Failures = append(result.Failures, Failure{
					Position: k + 1,
					Message:  fmt.Sprintf("Expected '%s' but got '%s' at position %d", X, c, k+1),
				})
				if X == grammar.EndOfInput {
					stack.Of = []grammar.Symbol{grammar.EndOfInput, g.Start()}
					k++
				}
				// otherwise: the mismatched terminal has already been
				// discarded from the stack above; continue without
				// advancing input.
			}

		default: // non-terminal
			entry, ok := table.Entry(X, c)
			if !ok {
				stack.Push(X)
				result.Failures = append(result.Failures, Failure{
					Position: k + 1,
					Message:  fmt.Sprintf("cannot parse '%s' at position %d, skipping", c, k+1),
				})
				k++
			} else if entry.IsSynch {
				result.Failures = append(result.Failures, Failure{
					Position: k + 1,
					Message:  fmt.Sprintf("cannot parse '%s' at position %d, trying new rule", c, k+1),
				})
				if stack.Len() == 1 {
					stack.Push(X)
					k++
				}
				// otherwise: X has already been discarded; retry with the
				// same input symbol against the next stack entry.
			} else {
				prod := g.Productions[entry.Productions[0]]
				for i := len(prod.Right) - 1; i >= 0; i-- {
					stack.Push(prod.Right[i])
				}
			}
		}
	}

	result.Accepted = len(result.Failures) == 0 && stack.Empty()
	return result
}
