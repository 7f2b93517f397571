package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Grammar_MarshalBinary_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{NonTerm("A"), Term("a"), NonTerm("B"), Term("b")}},
		{Left: NonTerm("A"), Right: []Symbol{Epsilon}},
		{Left: NonTerm("B"), Right: []Symbol{Term("b")}},
	})
	require.NoError(t, err)

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	var decoded Grammar
	require.NoError(t, decoded.UnmarshalBinary(data))

	assert.Equal(g.ID, decoded.ID)
	assert.Equal(g.Productions, decoded.Productions)
}

func Test_Grammar_MarshalBinary_EmptyRight(t *testing.T) {
	assert := assert.New(t)

	g, err := New([]Production{
		{Left: NonTerm("S"), Right: []Symbol{Epsilon}},
	})
	require.NoError(t, err)

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	var decoded Grammar
	require.NoError(t, decoded.UnmarshalBinary(data))

	assert.Equal(g.Productions, decoded.Productions)
}
