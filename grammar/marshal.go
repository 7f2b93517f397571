package grammar

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dekarrin/ll1check/internal/util"
)

// MarshalBinary encodes the production list and ID of g so that it can be
// cached to disk between CLI invocations with github.com/dekarrin/rezi
// instead of re-parsing the grammar file every run. The computed analysis
// tables are not part of the encoding; they are cheap to recompute and are
// derived data, not source of truth.
func (g Grammar) MarshalBinary() ([]byte, error) {
	var data []byte

	idBytes, err := g.ID.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encode grammar ID: %w", err)
	}
	data = append(data, util.EncInt(len(idBytes))...)
	data = append(data, idBytes...)

	data = append(data, util.EncInt(len(g.Productions))...)
	for _, p := range g.Productions {
		data = append(data, encSymbol(p.Left)...)
		data = append(data, util.EncInt(len(p.Right))...)
		for _, sym := range p.Right {
			data = append(data, encSymbol(sym)...)
		}
	}

	return data, nil
}

// UnmarshalBinary decodes a Grammar encoded by MarshalBinary.
func (g *Grammar) UnmarshalBinary(data []byte) error {
	idLen, readBytes, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decode grammar ID length: %w", err)
	}
	data = data[readBytes:]
	if len(data) < idLen {
		return fmt.Errorf("unexpected end of data in grammar ID")
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(data[:idLen]); err != nil {
		return fmt.Errorf("decode grammar ID: %w", err)
	}
	data = data[idLen:]

	prodCount, readBytes, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decode production count: %w", err)
	}
	data = data[readBytes:]

	prods := make([]Production, prodCount)
	for i := 0; i < prodCount; i++ {
		left, n, err := decSymbol(data)
		if err != nil {
			return fmt.Errorf("decode production %d left: %w", i, err)
		}
		data = data[n:]

		rightCount, n, err := util.DecInt(data)
		if err != nil {
			return fmt.Errorf("decode production %d right count: %w", i, err)
		}
		data = data[n:]

		right := make([]Symbol, rightCount)
		for j := 0; j < rightCount; j++ {
			sym, n, err := decSymbol(data)
			if err != nil {
				return fmt.Errorf("decode production %d symbol %d: %w", i, j, err)
			}
			data = data[n:]
			right[j] = sym
		}

		prods[i] = Production{Left: left, Right: right}
	}

	g.ID = id
	g.Productions = prods
	return nil
}

func encSymbol(s Symbol) []byte {
	data := util.EncInt(int(s.Kind))
	data = append(data, util.EncString(s.Value)...)
	return data
}

func decSymbol(data []byte) (Symbol, int, error) {
	kind, n, err := util.DecInt(data)
	if err != nil {
		return Symbol{}, 0, fmt.Errorf("decode symbol kind: %w", err)
	}
	consumed := n
	data = data[n:]

	value, n, err := util.DecString(data)
	if err != nil {
		return Symbol{}, 0, fmt.Errorf("decode symbol value: %w", err)
	}
	consumed += n

	return Symbol{Kind: SymbolKind(kind), Value: value}, consumed, nil
}
