package grammar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/ll1check/internal/util"
)

// Grammar is an ordered, append-only list of productions, numbered 0..R-1 by
// insertion order. Production 0's Left is the start non-terminal.
//
// Grammar owns the analysis tables it is asked to compute (first, follow)
// for the lifetime of the Grammar value; once ComputeFirst, ComputeFollow,
// and BuildTable have been called the tables are treated as read-only by
// every later caller, including Acceptor.
type Grammar struct {
	Productions []Production

	// ID tags this parse+analysis run so that diagnostics emitted across the
	// lifetime of one process (e.g. a REPL re-analyzing an edited grammar)
	// can be told apart in logs and in the Reporter's table header.
	ID uuid.UUID

	first      map[Symbol]util.KeySet[Symbol]
	rightFirst map[int]util.KeySet[Symbol]
	follow     map[Symbol]util.KeySet[Symbol]
}

// New builds a Grammar from an ordered production list. The list must be
// non-empty; prods[0].Left becomes the start symbol.
func New(prods []Production) (*Grammar, error) {
	if len(prods) == 0 {
		return nil, fmt.Errorf("grammar: no productions given")
	}
	return &Grammar{
		Productions: prods,
		ID:          uuid.New(),
	}, nil
}

// Start returns the distinguished start non-terminal, productions[0].Left.
func (g *Grammar) Start() Symbol {
	return g.Productions[0].Left
}

// NonTerminals returns every distinct non-terminal appearing as the Left of
// some production, in first-seen (production-index) order.
func (g *Grammar) NonTerminals() []Symbol {
	seen := map[Symbol]bool{}
	var order []Symbol
	for _, p := range g.Productions {
		if !seen[p.Left] {
			seen[p.Left] = true
			order = append(order, p.Left)
		}
	}
	return order
}

// Terminals returns every distinct terminal appearing in the right-hand side
// of some production, excluding Epsilon, in first-seen order.
func (g *Grammar) Terminals() []Symbol {
	seen := map[Symbol]bool{}
	var order []Symbol
	for _, p := range g.Productions {
		for _, sym := range p.Right {
			if sym.Kind == Terminal && sym != Epsilon && !seen[sym] {
				seen[sym] = true
				order = append(order, sym)
			}
		}
	}
	return order
}

// productionIndicesOf returns the indices, in production order, of every
// production whose Left is nt.
func (g *Grammar) productionIndicesOf(nt Symbol) []int {
	var idxs []int
	for i, p := range g.Productions {
		if p.Left == nt {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// First returns the computed FIRST set of the non-terminal nt. ComputeFirst
// must have been called first.
func (g *Grammar) First(nt Symbol) util.KeySet[Symbol] {
	return g.first[nt]
}

// RightFirst returns the computed FIRST set of production index idx's full
// right-hand side. ComputeFirst must have been called first.
func (g *Grammar) RightFirst(idx int) util.KeySet[Symbol] {
	return g.rightFirst[idx]
}

// Follow returns the computed FOLLOW set of the non-terminal nt. ComputeFollow
// must have been called first.
func (g *Grammar) Follow(nt Symbol) util.KeySet[Symbol] {
	return g.follow[nt]
}

// firstOfSequence computes FIRST of a (possibly empty) symbol sequence from
// the already-computed per-non-terminal FIRST sets. An empty sequence's
// FIRST is {epsilon}.
func (g *Grammar) firstOfSequence(seq []Symbol) util.KeySet[Symbol] {
	result := util.NewKeySet[Symbol]()
	if len(seq) == 0 {
		result.Add(Epsilon)
		return result
	}
	for _, sym := range seq {
		if sym.Kind == Terminal {
			result.Add(sym)
			return result
		}
		sf := g.first[sym]
		for _, t := range sf.Elements() {
			if t != Epsilon {
				result.Add(t)
			}
		}
		if !sf.Has(Epsilon) {
			return result
		}
	}
	result.Add(Epsilon)
	return result
}
