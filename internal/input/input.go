// Package input contains readers used to get the single line of target input
// that the CLI driver feeds to the acceptor, from either stdin directly or
// an interactive TTY.
package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// DirectLineReader reads lines from any generic
// input stream directly. It can be used generically with any io.Reader but
// does not sanitize the input of control and escape sequences.
//
// DirectLineReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectLineReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveLineReader reads lines from stdin
// using a Go implementation of the GNU Readline library. This keeps input
// clear of typing and editing escape sequences and enables command history.
// This should in general only be used when directly connecting to a TTY.
//
// InteractiveLineReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveLineReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a new DirectLineReader and initializes a buffered
// reader on r. Blank lines are allowed by default, since the acceptor's
// input string may legitimately be empty. The returned reader must have
// Close() called on it before disposal.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{
		r:             bufio.NewReader(r),
		blanksAllowed: true,
	}
}

// NewInteractiveReader creates a new InteractiveLineReader and initializes
// readline with the given prompt. Blank lines are allowed by default. The
// returned reader must have Close() called on it before disposal to properly
// tear down readline resources.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveLineReader{
		rl:            rl,
		prompt:        prompt,
		blanksAllowed: true,
	}, nil
}

// Close cleans up resources associated with the DirectLineReader.
func (dlr *DirectLineReader) Close() error {
	// present so DirectLineReader has the same shape as
	// InteractiveLineReader; it owns no closeable resources itself.
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveLineReader.
func (ilr *InteractiveLineReader) Close() error {
	return ilr.rl.Close()
}

// ReadLine reads the next line of input. Unless blank lines have been
// disallowed with AllowBlank(false), an empty line is returned as-is rather
// than being skipped, because the acceptor treats the empty string as valid
// target input. Only lines that are empty once the trailing newline is
// removed count as blank; a line holding only spaces is always returned.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dlr *DirectLineReader) ReadLine() (string, error) {
	line, err := dlr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = trimNewline(line)

	if line == "" && !dlr.blanksAllowed {
		return dlr.ReadLine()
	}

	return line, nil
}

// ReadLine reads the next line of input via readline. See
// DirectLineReader.ReadLine for the blank-line semantics.
func (ilr *InteractiveLineReader) ReadLine() (string, error) {
	line, err := ilr.rl.Readline()
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	if line == "" && !ilr.blanksAllowed {
		return ilr.ReadLine()
	}

	return line, nil
}

// AllowBlank sets whether a blank line is returned as-is (true, the default)
// or skipped in favor of the next non-blank line (false).
func (dlr *DirectLineReader) AllowBlank(allow bool) {
	dlr.blanksAllowed = allow
}

// AllowBlank sets whether a blank line is returned as-is (true, the default)
// or skipped in favor of the next non-blank line (false).
func (ilr *InteractiveLineReader) AllowBlank(allow bool) {
	ilr.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (ilr *InteractiveLineReader) SetPrompt(p string) {
	ilr.prompt = p
	ilr.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (ilr *InteractiveLineReader) GetPrompt() string {
	return ilr.prompt
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
