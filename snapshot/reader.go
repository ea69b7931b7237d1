package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformedInput = errors.New("malformed input")

// tokens reads whitespace separated fields. Files written by hand or by the
// match runner disagree on whether grid cells are space separated, so grid
// rows are reassembled from however many fields they span.
type tokens struct {
	scanner *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokens{scanner: scanner}
}

func (t *tokens) next(field string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", field, err)
		}
		return "", fmt.Errorf("%w: missing %s", ErrMalformedInput, field)
	}
	return t.scanner.Text(), nil
}

func (t *tokens) number(field string) (int, error) {
	s, err := t.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is %q, want an integer", ErrMalformedInput, field, s)
	}
	return v, nil
}

func (t *tokens) char(field string) (byte, error) {
	s, err := t.next(field)
	if err != nil {
		return 0, err
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %s is %q, want one character", ErrMalformedInput, field, s)
	}
	return s[0], nil
}

// rows reads m grid rows of n cells each.
func (t *tokens) rows(m, n int) ([]string, error) {
	rows := make([]string, m)
	for x := range rows {
		var b strings.Builder
		for b.Len() < n {
			s, err := t.next(fmt.Sprintf("row %d", x))
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
		}
		if b.Len() != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedInput, x, b.Len(), n)
		}
		rows[x] = b.String()
	}
	return rows, nil
}
