package frontend

import (
	"io"

	"golang.org/x/text/unicode/norm"

	"github.com/dekarrin/ll1check/grammar"
	"github.com/dekarrin/ll1check/internal/util"
)

// Parse reads a complete grammar-language source from r and returns the
// ordered production list it declares, suitable for grammar.New. The first
// statement's non-terminal becomes the start symbol.
//
// Grammar-file grammar: file := stmt* ; stmt := NonTerminal "->" alt ("|"
// alt)* ";" ; alt := symbol*. An empty alt is equivalent to the epsilon
// terminal.
//
// Non-terminal and terminal text is normalized to NFC before becoming a
// grammar.Symbol value. The lexer only accepts letters, digits, and its fixed
// ASCII punctuation set, so combining marks are rejected before this point
// and the normalization only affects letters that have a canonical NFC
// replacement. The acceptor's target-input lexing is untouched by this and
// stays single-code-unit.
func Parse(r io.Reader) ([]grammar.Production, error) {
	p := &parser{lex: newLexer(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.file()
}

type parser struct {
	lex *lexer
	cur *token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) file() ([]grammar.Production, error) {
	var prods []grammar.Production
	for p.cur.kind != tokenEOF {
		stmtProds, err := p.stmt()
		if err != nil {
			return nil, err
		}
		prods = append(prods, stmtProds...)
	}
	return prods, nil
}

func (p *parser) stmt() ([]grammar.Production, error) {
	if p.cur.kind != tokenNonTerminal {
		return nil, &InvalidSyntax{Pos: p.cur.pos, Found: describe(p.cur), Wanted: "non-terminal"}
	}
	left := grammar.NonTerm(norm.NFC.String(p.cur.text))
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.kind != tokenArrow {
		return nil, &InvalidSyntax{Pos: p.cur.pos, Found: describe(p.cur), Wanted: "'->'"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var prods []grammar.Production
	for {
		right, err := p.alt()
		if err != nil {
			return nil, err
		}
		prods = append(prods, grammar.Production{Left: left, Right: right})

		if p.cur.kind == tokenSemicolon {
			break
		}
		if p.cur.kind != tokenPipe {
			return nil, &InvalidSyntax{Pos: p.cur.pos, Found: describe(p.cur), Wanted: util.MakeTextList([]string{"'|'", "';'"})}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return prods, nil
}

// alt reads symbol* up to (but not consuming) the first token that is neither
// a terminal nor a non-terminal, normally '|' or ';'. An empty alt is
// equivalent to the epsilon terminal.
func (p *parser) alt() ([]grammar.Symbol, error) {
	var syms []grammar.Symbol
	for p.cur.kind == tokenNonTerminal || p.cur.kind == tokenTerminal {
		syms = append(syms, p.symbol())
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if len(syms) == 0 {
		return []grammar.Symbol{grammar.Epsilon}, nil
	}
	return syms, nil
}

func (p *parser) symbol() grammar.Symbol {
	switch p.cur.kind {
	case tokenNonTerminal:
		return grammar.NonTerm(norm.NFC.String(p.cur.text))
	default:
		if p.cur.text == grammar.Epsilon.Value {
			return grammar.Epsilon
		}
		return grammar.Term(norm.NFC.String(p.cur.text))
	}
}

func describe(t *token) string {
	switch t.kind {
	case tokenEOF:
		return "end of file"
	case tokenNonTerminal:
		return "non-terminal <" + t.text + ">"
	case tokenTerminal:
		return "terminal '" + t.text + "'"
	case tokenArrow:
		return "'->'"
	case tokenPipe:
		return "'|'"
	case tokenSemicolon:
		return "';'"
	default:
		return "unknown token"
	}
}
