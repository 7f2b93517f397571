package grammar

import "github.com/dekarrin/ll1check/internal/util"

// ComputeFollow computes FOLLOW(A) for every non-terminal A of g. ComputeFirst
// must have already been run successfully.
//
// FOLLOW($) is not a thing; instead $ is seeded into FOLLOW(start) before the
// fixed-point loop begins. Because FOLLOW(B) can depend on FOLLOW(A) while
// FOLLOW(A) depends on FOLLOW(B) (mutually dependent non-terminals), this
// repeats over every production until a full pass adds nothing new.
func (g *Grammar) ComputeFollow() {
	follow := map[Symbol]util.KeySet[Symbol]{}
	for _, nt := range g.NonTerminals() {
		follow[nt] = util.NewKeySet[Symbol]()
	}
	follow[g.Start()].Add(EndOfInput)
	g.follow = follow

	for {
		changed := false
		for _, prod := range g.Productions {
			for i, sym := range prod.Right {
				if !sym.IsNonTerminal() {
					continue
				}
				beta := prod.Right[i+1:]
				betaFirst := g.firstOfSequence(beta)

				for _, t := range betaFirst.Elements() {
					if t == Epsilon {
						continue
					}
					if follow[sym].Add(t) {
						changed = true
					}
				}

				if betaFirst.Has(Epsilon) {
					if follow[sym].AddAll(follow[prod.Left]) {
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}
}
