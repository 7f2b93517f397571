package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_RejectsEmptyGrammar(t *testing.T) {
	assert := assert.New(t)

	g, err := New(nil)
	assert.Error(err)
	assert.Nil(g)
}

func Test_New_AssignsID(t *testing.T) {
	assert := assert.New(t)

	g1, err := New([]Production{{Left: NonTerm("S"), Right: []Symbol{Term("a")}}})
	require.NoError(t, err)
	g2, err := New([]Production{{Left: NonTerm("S"), Right: []Symbol{Term("a")}}})
	require.NoError(t, err)

	assert.NotEqual(g1.ID, g2.ID)
}

func Test_Grammar_Start(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{Term("a")}},
		{Left: NonTerm("A"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)

	assert.Equal(NonTerm("S"), g.Start())
}

func Test_Grammar_NonTerminals_FirstSeenOrder(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("A"), NonTerm("B")}},
		{Left: NonTerm("B"), Right: []Symbol{Term("b")}},
		{Left: NonTerm("A"), Right: []Symbol{Term("a")}},
	})
	require.NoError(t, err)

	assert.Equal([]Symbol{NonTerm("S"), NonTerm("B"), NonTerm("A")}, g.NonTerminals())
}

func Test_Grammar_Terminals_ExcludesEpsilon(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{Term("a"), NonTerm("A")}},
		{Left: NonTerm("A"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)

	assert.Equal([]Symbol{Term("a")}, g.Terminals())
}

// scenarioA builds the grammar of spec Scenario A:
// S -> A a B b | B b A a ; A -> eps ; B -> eps
func scenarioA(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("A"), Term("a"), NonTerm("B"), Term("b")}},
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("B"), Term("b"), NonTerm("A"), Term("a")}},
		{Left: NonTerm("A"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("B"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)
	require.NoError(t, g.ComputeFirst())
	g.ComputeFollow()
	return g
}

func Test_ScenarioA_First(t *testing.T) {
	assert := assert.New(t)
	g := scenarioA(t)

	assert.ElementsMatch([]Symbol{Term("a"), Term("b")}, g.First(NonTerm("S")).Elements())
	assert.ElementsMatch([]Symbol{Epsilon}, g.First(NonTerm("A")).Elements())
	assert.ElementsMatch([]Symbol{Epsilon}, g.First(NonTerm("B")).Elements())
}

func Test_ScenarioA_Follow(t *testing.T) {
	assert := assert.New(t)
	g := scenarioA(t)

	assert.ElementsMatch([]Symbol{EndOfInput}, g.Follow(NonTerm("S")).Elements())
	assert.ElementsMatch([]Symbol{Term("a")}, g.Follow(NonTerm("A")).Elements())
	assert.ElementsMatch([]Symbol{Term("b")}, g.Follow(NonTerm("B")).Elements())
}

func Test_ScenarioA_Table(t *testing.T) {
	assert := assert.New(t)
	g := scenarioA(t)

	table := g.BuildTable()
	assert.True(table.ValidLL1)

	entry, ok := table.Entry(NonTerm("S"), Term("a"))
	require.True(t, ok)
	assert.Equal([]int{0}, entry.Productions)

	entry, ok = table.Entry(NonTerm("S"), Term("b"))
	require.True(t, ok)
	assert.Equal([]int{1}, entry.Productions)

	entry, ok = table.Entry(NonTerm("S"), EndOfInput)
	require.True(t, ok)
	assert.True(entry.IsSynch)

	entry, ok = table.Entry(NonTerm("A"), Term("a"))
	require.True(t, ok)
	assert.Equal([]int{2}, entry.Productions)

	entry, ok = table.Entry(NonTerm("B"), Term("b"))
	require.True(t, ok)
	assert.Equal([]int{3}, entry.Productions)
}

// scenarioB builds the grammar of spec Scenario B: S -> A B; A -> a | eps; B -> b | eps
func scenarioB(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("A"), NonTerm("B")}},
		{Left: NonTerm("A"), Right: []Symbol{Term("a")}},
		{Left: NonTerm("A"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("B"), Right: []Symbol{Term("b")}},
		{Left: NonTerm("B"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)
	require.NoError(t, g.ComputeFirst())
	g.ComputeFollow()
	return g
}

func Test_ScenarioB_First(t *testing.T) {
	assert := assert.New(t)
	g := scenarioB(t)

	assert.ElementsMatch([]Symbol{Term("a"), Term("b"), Epsilon}, g.First(NonTerm("S")).Elements())
	assert.ElementsMatch([]Symbol{Term("a"), Epsilon}, g.First(NonTerm("A")).Elements())
	assert.ElementsMatch([]Symbol{Term("b"), Epsilon}, g.First(NonTerm("B")).Elements())
}

func Test_ScenarioB_Follow(t *testing.T) {
	assert := assert.New(t)
	g := scenarioB(t)

	assert.ElementsMatch([]Symbol{EndOfInput}, g.Follow(NonTerm("S")).Elements())
	assert.ElementsMatch([]Symbol{Term("b"), EndOfInput}, g.Follow(NonTerm("A")).Elements())
	assert.ElementsMatch([]Symbol{EndOfInput}, g.Follow(NonTerm("B")).Elements())
}

func Test_ScenarioB_Table_IsLL1(t *testing.T) {
	assert := assert.New(t)
	g := scenarioB(t)

	table := g.BuildTable()
	assert.True(table.ValidLL1)
}

// scenarioC builds the classic expression grammar of spec Scenario C:
// E -> T E' ; E' -> + T E' | eps ; T -> F T' ; T' -> * F T' | eps ; F -> ( E ) | i
func scenarioC(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]Production{
		{Left: NonTerm("E"), Right: []Symbol{NonTerm("T"), NonTerm("E'")}},
		{Left: NonTerm("E'"), Right: []Symbol{Term("+"), NonTerm("T"), NonTerm("E'")}},
		{Left: NonTerm("E'"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("T"), Right: []Symbol{NonTerm("F"), NonTerm("T'")}},
		{Left: NonTerm("T'"), Right: []Symbol{Term("*"), NonTerm("F"), NonTerm("T'")}},
		{Left: NonTerm("T'"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("F"), Right: []Symbol{Term("("), NonTerm("E"), Term(")")}},
		{Left: NonTerm("F"), Right: []Symbol{Term("i")}},
	})
	require.NoError(t, err)
	require.NoError(t, g.ComputeFirst())
	g.ComputeFollow()
	return g
}

func Test_ScenarioC_Table_IsLL1(t *testing.T) {
	assert := assert.New(t)
	g := scenarioC(t)

	table := g.BuildTable()
	assert.True(table.ValidLL1)
}

// scenarioD builds the dangling-else grammar of spec Scenario D:
// S -> i E t S S' | a ; S' -> e S | eps ; E -> b
func scenarioD(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{Term("i"), NonTerm("E"), Term("t"), NonTerm("S"), NonTerm("S'")}},
		{Left: NonTerm("S"), Right: []Symbol{Term("a")}},
		{Left: NonTerm("S'"), Right: []Symbol{Term("e"), NonTerm("S")}},
		{Left: NonTerm("S'"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("E"), Right: []Symbol{Term("b")}},
	})
	require.NoError(t, err)
	require.NoError(t, g.ComputeFirst())
	g.ComputeFollow()
	return g
}

func Test_ScenarioD_Table_HasConflict(t *testing.T) {
	assert := assert.New(t)
	g := scenarioD(t)

	table := g.BuildTable()
	assert.False(table.ValidLL1)

	entry, ok := table.Entry(NonTerm("S'"), Term("e"))
	require.True(t, ok)
	assert.ElementsMatch([]int{2, 3}, entry.Productions)
}

// scenarioE builds the grammar of spec Scenario E:
// S -> A a ; A -> B D ; B -> b | eps ; D -> d | eps
func scenarioE(t *testing.T) *Grammar {
	t.Helper()
	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("A"), Term("a")}},
		{Left: NonTerm("A"), Right: []Symbol{NonTerm("B"), NonTerm("D")}},
		{Left: NonTerm("B"), Right: []Symbol{Term("b")}},
		{Left: NonTerm("B"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("D"), Right: []Symbol{Term("d")}},
		{Left: NonTerm("D"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)
	require.NoError(t, g.ComputeFirst())
	g.ComputeFollow()
	return g
}

func Test_ScenarioE_First(t *testing.T) {
	assert := assert.New(t)
	g := scenarioE(t)

	assert.ElementsMatch([]Symbol{Term("a"), Term("b"), Term("d")}, g.First(NonTerm("S")).Elements())
}

func Test_ScenarioE_Follow(t *testing.T) {
	assert := assert.New(t)
	g := scenarioE(t)

	assert.ElementsMatch([]Symbol{Term("a"), Term("d")}, g.Follow(NonTerm("B")).Elements())
	assert.ElementsMatch([]Symbol{Term("a")}, g.Follow(NonTerm("D")).Elements())
}

func Test_ScenarioE_Table_IsLL1(t *testing.T) {
	assert := assert.New(t)
	g := scenarioE(t)

	table := g.BuildTable()
	assert.True(table.ValidLL1)
}
