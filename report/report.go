// Package report renders a grammar.Grammar's FIRST/FOLLOW sets and rule
// table as fixed-width text tables for the CLI driver to print.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/ll1check/grammar"
)

// FirstFollowTable renders one row per non-terminal of g, showing its name,
// FIRST set, and FOLLOW set, under a header naming g's analysis ID.
// ComputeFirst and ComputeFollow must already have run.
func FirstFollowTable(g *grammar.Grammar) string {
	data := [][]string{{"Non-Terminal", "FIRST", "FOLLOW"}}

	for _, nt := range g.NonTerminals() {
		data = append(data, []string{
			nt.String(),
			setString(g.First(nt)),
			setString(g.Follow(nt)),
		})
	}

	return rosed.Edit("Grammar " + g.ID.String() + "\n").
		InsertTableOpts(math.MaxInt, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// RuleTable renders table indexed by non-terminal (rows) x terminal-or-$
// (columns), under a header naming g's analysis ID; cells show
// comma-separated production indices or "synch".
func RuleTable(g *grammar.Grammar, table *grammar.Table) string {
	nts := g.NonTerminals()
	terms := append(append([]grammar.Symbol{}, g.Terminals()...), grammar.EndOfInput)

	topRow := []string{""}
	for _, term := range terms {
		topRow = append(topRow, term.String())
	}
	data := [][]string{topRow}

	for _, nt := range nts {
		row := []string{nt.String()}
		for _, term := range terms {
			entry, ok := table.Entry(nt, term)
			row = append(row, entryString(entry, ok))
		}
		data = append(data, row)
	}

	return rosed.Edit("Grammar " + g.ID.String() + "\n").
		InsertTableOpts(math.MaxInt, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// Verdict renders the one-line validity summary for g's rule table.
func Verdict(table *grammar.Table) string {
	if table.ValidLL1 {
		return "Grammar is a valid LL(1) grammar."
	}
	return "Grammar is not a valid ll1"
}

func entryString(e *grammar.Entry, ok bool) string {
	if !ok || e == nil {
		return ""
	}
	if e.IsSynch {
		return "synch"
	}
	strs := make([]string, len(e.Productions))
	for i, idx := range e.Productions {
		strs[i] = strconv.Itoa(idx)
	}
	return strings.Join(strs, ",")
}

func setString(set interface{ Elements() []grammar.Symbol }) string {
	elems := set.Elements()
	strs := make([]string, len(elems))
	for i, s := range elems {
		strs[i] = fmt.Sprint(s)
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
