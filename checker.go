// Package ll1check wires the grammar, frontend, acceptor, and report
// packages together into the single top-level operation the CLI drives:
// load a grammar, analyze it, and optionally run the acceptor against one
// line of target input.
package ll1check

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/rezi"

	"github.com/dekarrin/ll1check/acceptor"
	"github.com/dekarrin/ll1check/grammar"
	"github.com/dekarrin/ll1check/report"
)

// Config holds the settings the CLI may load from a TOML file via --config.
// GrammarPath and CachePath provide defaults for --grammar and --cache when
// those flags are not passed explicitly; Prompt is parsed but the CLI does
// not read it.
type Config struct {
	GrammarPath string `toml:"grammar_path"`
	CachePath   string `toml:"cache_path"`
	Prompt      string `toml:"prompt"`
}

// LoadConfig reads and parses a TOML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &cfg, nil
}

// Checker holds one fully analyzed grammar: the store itself plus the
// derived rule table. It is read-only and reentrant for Accept once built.
type Checker struct {
	Grammar *grammar.Grammar
	Table   *grammar.Table
}

// Analyze builds a Checker from an already-parsed production list: it
// constructs the grammar store, computes FIRST and FOLLOW, and builds the
// LL(1) rule table. The only error case is left recursion; an LL(1)
// conflict is recorded in Table.ValidLL1, not returned as an error, so that
// the caller can still print the FIRST/FOLLOW/rule-table report for a
// non-LL(1) grammar.
func Analyze(prods []grammar.Production) (*Checker, error) {
	g, err := grammar.New(prods)
	if err != nil {
		return nil, fmt.Errorf("build grammar: %w", err)
	}
	if err := g.ComputeFirst(); err != nil {
		return nil, fmt.Errorf("compute FIRST: %w", err)
	}
	g.ComputeFollow()

	return &Checker{
		Grammar: g,
		Table:   g.BuildTable(),
	}, nil
}

// LoadCached reconstructs a Checker from a grammar previously saved with
// Checker.SaveCache, re-deriving FIRST/FOLLOW/the rule table rather than
// trusting the cache to hold them, since they are cheap to recompute and
// the cache's only job is to skip re-parsing the grammar source file.
func LoadCached(path string) (*Checker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	g := &grammar.Grammar{}
	n, err := rezi.DecBinary(data, g)
	if err != nil {
		return nil, fmt.Errorf("decode cache file: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("cache file has %d trailing bytes after decoding", len(data)-n)
	}

	return Analyze(g.Productions)
}

// SaveCache persists the parsed-but-unanalyzed grammar (the production list
// and its ID) to path via REZI binary encoding, so a later run with --cache
// can skip re-parsing the grammar source file.
func (c *Checker) SaveCache(path string) error {
	data := rezi.EncBinary(c.Grammar)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// IsLL1 reports whether the analyzed grammar is LL(1).
func (c *Checker) IsLL1() bool {
	return c.Table.ValidLL1
}

// Report renders the FIRST/FOLLOW table and the rule table as they should be
// printed to the user, in that order.
func (c *Checker) Report() (firstFollow string, ruleTable string) {
	return report.FirstFollowTable(c.Grammar), report.RuleTable(c.Grammar, c.Table)
}

// Verdict renders the one-line LL(1)-validity summary.
func (c *Checker) Verdict() string {
	return report.Verdict(c.Table)
}

// Accept runs the acceptor over input against the analyzed grammar. Callers
// should check IsLL1 first; running the acceptor against a non-LL(1)
// grammar's rule table produces meaningless results, since the acceptor
// follows only the first-recorded production of a conflicting cell.
func (c *Checker) Accept(input string) acceptor.Result {
	return acceptor.Accept(c.Grammar, c.Table, input)
}
