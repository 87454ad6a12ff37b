package notation

import (
	"unicode"
	"unicode/utf8"
)

// maxNumeral caps decimal numerals so that absurdly long digit runs cannot overflow.
const maxNumeral = 1 << 24

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) literal(lit string) bool {
	if len(s.src)-s.pos < len(lit) || s.src[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

func (s *scanner) char(c byte) bool {
	if s.done() || s.src[s.pos] != c {
		return false
	}
	s.pos++
	return true
}

// isSpace is unicode.IsSpace minus NEL, plus the byte order mark.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

func (s *scanner) spaces() {
	for !s.done() {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isSpace(r) {
			return
		}
		s.pos += size
	}
}

// number reads one or more ASCII digits.
func (s *scanner) number() (int, bool) {
	start := s.pos
	n := 0
	for !s.done() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		if n < maxNumeral {
			n = n*10 + int(s.src[s.pos]-'0')
		}
		s.pos++
	}
	if n > maxNumeral {
		n = maxNumeral
	}
	return n, s.pos > start
}

// arguments reads "(" a "," b "," c ")" up to the end of input, with optional
// whitespace around every number. percent[i] allows a '%' right after the i-th number.
func (s *scanner) arguments(percent [3]bool) (values [3]int, reason string) {
	if !s.char('(') {
		return values, "expected '('"
	}

	for i := range values {
		s.spaces()
		n, ok := s.number()
		if !ok {
			return values, "expected a number for " + ordinal[i] + " component"
		}
		values[i] = n

		if percent[i] {
			s.char('%')
		}
		s.spaces()

		if i < len(values)-1 && !s.char(',') {
			return values, "expected ',' after " + ordinal[i] + " component"
		}
	}

	if !s.char(')') {
		return values, "expected ')' after third component"
	}
	if !s.done() {
		return values, "unexpected input after ')'"
	}

	return values, ""
}

var ordinal = [3]string{"first", "second", "third"}
