package console

import (
	"bufio"
	"errors"
	"flight-dashboard/internal/domain"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInvalidInput = errors.New("invalid input")

// prompter writes prompts and reads whitespace-separated integer answers,
// so "08 30" may be typed on one line or two. Tokens of the current line are
// queued; a bad token drops the rest of its line.
type prompter struct {
	sc      *bufio.Scanner
	out     io.Writer
	pending []string
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

func (p *prompter) next() (int, error) {
	for len(p.pending) == 0 {
		if !p.sc.Scan() {
			if err := p.sc.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, io.EOF
		}
		p.pending = strings.Fields(p.sc.Text())
	}

	tok := p.pending[0]
	p.pending = p.pending[1:]

	n, err := strconv.Atoi(tok)
	if err != nil {
		p.discardLine()
		return 0, fmt.Errorf("%w: %q", errInvalidInput, tok)
	}
	return n, nil
}

// Drop whatever is left of the current input line.
func (p *prompter) discardLine() { p.pending = nil }

func (p *prompter) readInt(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	return p.next()
}

func (p *prompter) readTime(prompt string) (domain.Time, error) {
	fmt.Fprint(p.out, prompt)
	h, err := p.next()
	if err != nil {
		return domain.Time{}, err
	}
	m, err := p.next()
	if err != nil {
		return domain.Time{}, err
	}
	return domain.NewTime(h, m), nil
}
