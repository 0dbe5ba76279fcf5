package swc

import "strconv"

// tokenizer advances a cursor over a read-only text buffer, skipping
// whitespace, comments, and blank lines, and yielding signed integers and
// floating-point numbers. It is the sole owner of the 1-based line
// counter: consumeLineAndTrailingComments and advanceToNumber advance it,
// once for every newline they consume.
type tokenizer struct {
	buf    []byte
	cursor int
	line   int
}

func newTokenizer(buf []byte) *tokenizer {
	return &tokenizer{buf: buf, cursor: 0, line: 1}
}

func (t *tokenizer) done() bool {
	return t.cursor >= len(t.buf)
}

func isLineWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// skipTo advances the cursor to the next occurrence of c, or to end. It
// does not consume c.
func (t *tokenizer) skipTo(c byte) {
	for !t.done() && t.buf[t.cursor] != c {
		t.cursor++
	}
}

// advanceToNonWhitespace advances past a run of space/tab/CR bytes,
// stopping at the first non-whitespace byte, at '#', at newline, or at end.
func (t *tokenizer) advanceToNonWhitespace() {
	for !t.done() && isLineWhitespace(t.buf[t.cursor]) {
		t.cursor++
	}
}

// consumeLineAndTrailingComments repeatedly skips intra-line whitespace,
// then a trailing comment if present, then a single newline, incrementing
// the line counter for each newline consumed. Returns true once at least
// one newline has been consumed, or end has been reached; false if a
// non-whitespace, non-comment, non-newline byte was encountered first.
func (t *tokenizer) consumeLineAndTrailingComments() bool {
	consumedNewline := false
	for {
		t.advanceToNonWhitespace()
		if t.done() {
			return true
		}
		switch t.buf[t.cursor] {
		case '#':
			t.skipTo('\n')
			continue
		case '\n':
			t.cursor++
			t.line++
			consumedNewline = true
			continue
		default:
			return consumedNewline
		}
	}
}

func isNumberStart(b byte) bool {
	return (b >= '0' && b <= '9') || b == '+' || b == '-' || b == '.'
}

// advanceToNumber consumes trailing whitespace/comments/blank lines, then
// requires the next byte to begin a number.
func (t *tokenizer) advanceToNumber() error {
	for {
		t.advanceToNonWhitespace()
		if t.done() {
			return &LoadError{Code: ErrEarlyEndOfFile, Line: t.line, SampleID: NoParent, ParentID: NoParent}
		}
		switch t.buf[t.cursor] {
		case '#':
			t.skipTo('\n')
			continue
		case '\n':
			t.cursor++
			t.line++
			continue
		default:
			if !isNumberStart(t.buf[t.cursor]) {
				return &LoadError{Code: ErrLineNonParsable, Line: t.line, SampleID: NoParent, ParentID: NoParent}
			}
			return nil
		}
	}
}

// scanToken consumes a maximal run of bytes that could plausibly belong to
// a numeric literal (digits, sign, '.', exponent marker and its sign),
// starting at the cursor, and returns it as a string without advancing
// past trailing garbage of a different kind.
func (t *tokenizer) scanToken() string {
	start := t.cursor
	// optional leading sign
	if !t.done() && (t.buf[t.cursor] == '+' || t.buf[t.cursor] == '-') {
		t.cursor++
	}
	sawDigitOrDot := false
	for !t.done() {
		b := t.buf[t.cursor]
		switch {
		case b >= '0' && b <= '9':
			sawDigitOrDot = true
			t.cursor++
		case b == '.':
			t.cursor++
		case (b == 'e' || b == 'E') && sawDigitOrDot:
			t.cursor++
			if !t.done() && (t.buf[t.cursor] == '+' || t.buf[t.cursor] == '-') {
				t.cursor++
			}
		default:
			return string(t.buf[start:t.cursor])
		}
	}
	return string(t.buf[start:t.cursor])
}

// readInt advances to and parses a signed integer literal.
func (t *tokenizer) readInt() (int64, error) {
	if err := t.advanceToNumber(); err != nil {
		return 0, err
	}
	tok := t.scanToken()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &LoadError{Code: ErrLineNonParsable, Line: t.line, SampleID: NoParent, ParentID: NoParent}
	}
	return v, nil
}

// readFloat advances to and parses a floating-point literal, accepting
// scientific notation.
func (t *tokenizer) readFloat() (float64, error) {
	if err := t.advanceToNumber(); err != nil {
		return 0, err
	}
	tok := t.scanToken()
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &LoadError{Code: ErrLineNonParsable, Line: t.line, SampleID: NoParent, ParentID: NoParent}
	}
	return v, nil
}
