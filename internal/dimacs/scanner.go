package dimacs

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
)

// Scanner tokenizes a DIMACS CNF byte stream. It works line by line so that
// parse errors can point at the offending line, but tokens flow across line
// boundaries: a clause may span several lines and several clauses may share
// one. Lines whose first non-blank byte is 'c' are comments and are dropped
// wholesale.
type Scanner struct {
	r    *bufio.Reader
	line int
	text string
	pos  int
	done bool
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Column returns the 1-based column of the scan position in the current line.
func (s *Scanner) Column() int {
	return s.pos + 1
}

// LineText returns the text of the current line, without its newline.
func (s *Scanner) LineText() string {
	return s.text
}

// SkipSpace advances past blanks and line breaks to the next token byte.
// After it returns, either AtEnd reports true or a token byte is pending.
func (s *Scanner) SkipSpace() error {
	for {
		for s.pos < len(s.text) && isBlank(s.text[s.pos]) {
			s.pos++
		}
		if s.pos < len(s.text) {
			return nil
		}
		ok, err := s.advanceLine()
		if err != nil {
			return err
		}
		if !ok {
			s.done = true
			s.pos = len(s.text) // a trailing comment line leaves nothing pending
			return nil
		}
	}
}

// AtEnd reports whether the input is exhausted. Only meaningful after
// SkipSpace.
func (s *Scanner) AtEnd() bool {
	return s.done && s.pos >= len(s.text)
}

// Peek returns the pending byte without consuming it.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

// ScanWord consumes and returns the pending run of non-blank bytes.
func (s *Scanner) ScanWord() string {
	start := s.pos
	for s.pos < len(s.text) && !isBlank(s.text[s.pos]) {
		s.pos++
	}
	return s.text[start:s.pos]
}

// RestOfLine consumes and returns everything up to the end of the current
// line.
func (s *Scanner) RestOfLine() string {
	rest := s.text[s.pos:]
	s.pos = len(s.text)
	return rest
}

// ScanInt consumes a signed decimal integer. The token must be terminated by
// a blank or the end of the line; anything else is reported as a malformed
// token.
func (s *Scanner) ScanInt() (int, error) {
	start := s.pos
	if s.pos < len(s.text) && s.text[s.pos] == '-' {
		s.pos++
	}
	digits := 0
	n := 0
	for s.pos < len(s.text) && isDigit(s.text[s.pos]) {
		n = n*10 + int(s.text[s.pos]-'0')
		if n > math.MaxInt32 {
			s.skipToken()
			return 0, errors.New("number too large: " + strconv.Quote(s.text[start:s.pos]))
		}
		digits++
		s.pos++
	}
	if digits == 0 || (s.pos < len(s.text) && !isBlank(s.text[s.pos])) {
		s.skipToken()
		return 0, errors.New("expected integer, got " + strconv.Quote(s.text[start:s.pos]))
	}
	if s.text[start] == '-' {
		n = -n
	}
	return n, nil
}

func (s *Scanner) skipToken() {
	for s.pos < len(s.text) && !isBlank(s.text[s.pos]) {
		s.pos++
	}
}

// advanceLine loads the next non-comment line. It returns false at end of
// input.
func (s *Scanner) advanceLine() (bool, error) {
	for {
		raw, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		if raw == "" {
			return false, nil
		}
		s.line++
		s.text = trimNewline(raw)
		s.pos = 0

		i := 0
		for i < len(s.text) && isBlank(s.text[i]) {
			i++
		}
		if i < len(s.text) && s.text[i] == 'c' {
			continue // comment line
		}
		return true, nil
	}
}

func trimNewline(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
