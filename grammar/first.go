package grammar

import "github.com/dekarrin/ll1check/internal/util"

// ComputeFirst computes, for every non-terminal A of g, FIRST(A) (stored for
// retrieval via Grammar.First), and for every production p, the FIRST of
// p's full right-hand side (Grammar.RightFirst).
//
// Left recursion is detected with a pending-stack guard: a non-terminal that
// is reached again while its own FIRST computation is still in progress
// causes a *LeftRecursionError naming the culprit. ComputeFollow and
// BuildTable require ComputeFirst to have returned successfully first.
func (g *Grammar) ComputeFirst() error {
	c := &firstComputer{
		g:          g,
		done:       map[Symbol]bool{},
		pending:    map[Symbol]bool{},
		first:      map[Symbol]util.KeySet[Symbol]{},
		rightFirst: map[int]util.KeySet[Symbol]{},
	}
	for _, nt := range g.NonTerminals() {
		c.first[nt] = util.NewKeySet[Symbol]()
	}
	for _, nt := range g.NonTerminals() {
		if err := c.computeNonTerminal(nt); err != nil {
			return err
		}
	}
	g.first = c.first
	g.rightFirst = c.rightFirst
	return nil
}

type firstComputer struct {
	g          *Grammar
	done       map[Symbol]bool
	pending    map[Symbol]bool
	first      map[Symbol]util.KeySet[Symbol]
	rightFirst map[int]util.KeySet[Symbol]
}

// computeNonTerminal ensures FIRST(nt) and the RightFirst of every one of
// nt's own productions are fully populated, recursing into referenced
// non-terminals as needed. It is a no-op if nt is already done.
func (c *firstComputer) computeNonTerminal(nt Symbol) error {
	if c.done[nt] {
		return nil
	}
	if c.pending[nt] {
		return &LeftRecursionError{NonTerminal: nt}
	}
	c.pending[nt] = true
	for _, idx := range c.g.productionIndicesOf(nt) {
		if err := c.computeProduction(idx); err != nil {
			return err
		}
	}
	delete(c.pending, nt)
	c.done[nt] = true
	return nil
}

// computeProduction walks production idx's right-hand side left to right per
// spec: a leading terminal stops the walk immediately; a leading non-terminal
// contributes its FIRST set and, if nullable, the walk continues to the next
// symbol; falling off the end (or an epsilon production) contributes epsilon.
func (c *firstComputer) computeProduction(idx int) error {
	prod := c.g.Productions[idx]
	acc := c.first[prod.Left]
	rf := util.NewKeySet[Symbol]()
	c.rightFirst[idx] = rf

	if prod.IsEpsilon() {
		acc.Add(Epsilon)
		rf.Add(Epsilon)
		return nil
	}

	for _, sym := range prod.Right {
		if sym.Kind == Terminal {
			acc.Add(sym)
			rf.Add(sym)
			return nil
		}

		if err := c.computeNonTerminal(sym); err != nil {
			return err
		}
		symFirst := c.first[sym]
		for _, t := range symFirst.Elements() {
			if t != Epsilon {
				acc.Add(t)
				rf.Add(t)
			}
		}
		if !symFirst.Has(Epsilon) {
			return nil
		}
	}

	// every symbol in the production was nullable
	acc.Add(Epsilon)
	rf.Add(Epsilon)
	return nil
}
