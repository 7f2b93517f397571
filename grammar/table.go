package grammar

// Entry is a single cell of a Table: either a non-empty list of candidate
// production indices (normally length 1 for an LL(1) grammar; length >= 2
// records a conflict that is retained, not discarded, for reporting) or the
// Synch marker, never both.
type Entry struct {
	Productions []int
	IsSynch     bool
}

// Table is the LL(1) predictive parse table, indexed by non-terminal and
// lookahead terminal (terminals-or-$), plus the overall validity verdict.
type Table struct {
	// ValidLL1 is true iff no cell holds two or more distinct production
	// indices.
	ValidLL1 bool

	cells map[Symbol]map[Symbol]*Entry
}

// Entry looks up the rule-table cell for (nt, term). The second return value
// is false if no cell has ever been set for that pair.
func (t *Table) Entry(nt, term Symbol) (*Entry, bool) {
	row, ok := t.cells[nt]
	if !ok {
		return nil, false
	}
	e, ok := row[term]
	return e, ok
}

func (t *Table) addEntry(nt, term Symbol, prodIdx int) {
	row, ok := t.cells[nt]
	if !ok {
		row = map[Symbol]*Entry{}
		t.cells[nt] = row
	}
	e, ok := row[term]
	if !ok {
		e = &Entry{}
		row[term] = e
	}
	if len(e.Productions) > 0 {
		t.ValidLL1 = false
	}
	e.Productions = append(e.Productions, prodIdx)
}

// BuildTable constructs the LL(1) predictive rule table from the already
// computed FIRST/FOLLOW sets (ComputeFirst and ComputeFollow must have run).
//
// For each production p: A -> alpha, every terminal in RightFirst(p) other
// than epsilon predicts p; if epsilon is in RightFirst(p), every terminal in
// FOLLOW(A) predicts p too. Any pre-existing entry at a cell marks the table
// invalid (a conflict) but both production indices are kept. Finally, every
// (A, t) with t in FOLLOW(A) and no entry gets the Synch marker, seeding
// panic-mode recovery.
func (g *Grammar) BuildTable() *Table {
	t := &Table{
		ValidLL1: true,
		cells:    map[Symbol]map[Symbol]*Entry{},
	}
	for _, nt := range g.NonTerminals() {
		t.cells[nt] = map[Symbol]*Entry{}
	}

	for idx, prod := range g.Productions {
		rf := g.rightFirst[idx]
		for _, term := range rf.Elements() {
			if term == Epsilon {
				continue
			}
			t.addEntry(prod.Left, term, idx)
		}
		if rf.Has(Epsilon) {
			for _, term := range g.follow[prod.Left].Elements() {
				t.addEntry(prod.Left, term, idx)
			}
		}
	}

	for _, nt := range g.NonTerminals() {
		for _, term := range g.follow[nt].Elements() {
			if _, ok := t.cells[nt][term]; !ok {
				t.cells[nt][term] = &Entry{IsSynch: true}
			}
		}
	}

	return t
}
