package cssinline

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/css/scanner"
)

// token is a scanner token together with its location in the stylesheet.
type token struct {
	*scanner.Token
	offset int  // byte offset in the stylesheet
	width  int  // length in bytes in the stylesheet
	bad    bool // string interrupted by a newline
}

func (t *token) end() int {
	return t.offset + t.width
}

// tokenstream is a list of CSS tokens
type tokenstream []*token

// StyleRule is a qualified rule of a stylesheet. Selector is the prelude and
// Block the text between the rule's braces, both exactly as written in the
// source.
type StyleRule struct {
	Selector string
	Block    string
}

// scannerInput prepares the stylesheet for the scanner. The scanner replaces
// CR, FF and NUL itself, some of them with a different number of bytes; doing
// it here byte for byte keeps token offsets valid for the original text.
func scannerInput(css string) string {
	b := []byte(css)
	for i, c := range b {
		switch c {
		case '\r', '\f':
			b[i] = '\n'
		case 0:
			b[i] = 0x7f
		}
	}
	return string(b)
}

// tokenizeCSSString returns all tokens of the CSS text. Strings broken by a
// newline become bad string tokens. A string or comment still open at the end
// of the input is an EndOfInput error.
func tokenizeCSSString(css string) (tokenstream, error) {
	src := scannerInput(css)
	var toks tokenstream
	offset := 0
	s := scanner.New(src)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return toks, nil
		case scanner.TokenError:
			// the scanner gives up for good, restart it behind the recovered token
			t, err := recoverToken(css, src, offset)
			if err != nil {
				return nil, err
			}
			toks = append(toks, t)
			offset = t.end()
			s = scanner.New(src[offset:])
			continue
		}
		t := &token{Token: tok, offset: offset, width: len(tok.Value)}
		if tok.Type == scanner.TokenChar {
			// single runes are re-encoded, invalid UTF-8 turns into U+FFFD
			_, t.width = utf8.DecodeRuneInString(src[offset:])
		}
		toks = append(toks, t)
		offset = t.end()
	}
}

// recoverToken reads the token at offset the scanner failed on. This is
// either a string the scanner's grammar does not accept (newline, tab or
// control characters inside) or an unclosed comment.
func recoverToken(css, src string, offset int) (*token, error) {
	switch q := src[offset]; q {
	case '"', '\'':
		for i := offset + 1; i < len(src); i++ {
			switch src[i] {
			case '\\':
				i++
			case '\n':
				return stringToken(src, offset, i, true), nil
			case q:
				return stringToken(src, offset, i+1, false), nil
			}
		}
		return nil, endOfInput(css)
	case '/':
		return nil, endOfInput(css)
	}
	_, w := utf8.DecodeRuneInString(src[offset:])
	return nil, newParseError(UnexpectedToken, css, offset, strings.ToValidUTF8(src[offset:offset+w], "�"))
}

func stringToken(src string, from, to int, bad bool) *token {
	tok := &scanner.Token{Type: scanner.TokenString, Value: src[from:to]}
	return &token{Token: tok, offset: from, width: to - from, bad: bad}
}

// isDelim reports whether t is the single character c.
func isDelim(t *token, c string) bool {
	return t.Type == scanner.TokenChar && t.Value == c
}

// closerFor returns the closing character for an opening token, or the empty
// string if t does not open a nested block.
func closerFor(t *token) string {
	switch {
	case t.Type == scanner.TokenFunction:
		return ")"
	case t.Type != scanner.TokenChar:
		return ""
	}
	switch t.Value {
	case "(":
		return ")"
	case "[":
		return "]"
	case "{":
		return "}"
	}
	return ""
}

// nesting keeps track of open (, [ and { inside a prelude or block.
type nesting []string

// step feeds one token to the nesting stack. A closer only pops the stack
// if it matches the innermost opener, otherwise it is plain text.
func (n *nesting) step(t *token) {
	if c := closerFor(t); c != "" {
		*n = append(*n, c)
		return
	}
	if l := len(*n); l > 0 && t.Type == scanner.TokenChar && (*n)[l-1] == t.Value {
		*n = (*n)[:l-1]
	}
}

func (n nesting) depth() int {
	return len(n)
}

// isBlank reports whether the token is whitespace or a comment.
func isBlank(t *token) bool {
	return t.Type == scanner.TokenS || t.Type == scanner.TokenComment
}

// ParseStylesheet splits a stylesheet into its qualified rules. Selector and
// declaration block of every rule are kept as raw text. The first malformed
// construct stops the parser, in which case no rules are returned and the
// error is a *ParseError.
func ParseStylesheet(css string) ([]StyleRule, error) {
	toks, err := tokenizeCSSString(css)
	if err != nil {
		return nil, err
	}
	var rules []StyleRule
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch t.Type {
		case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM:
			i++
			continue
		case scanner.TokenAtKeyword:
			return nil, newParseError(InvalidAtRule, css, t.offset, strings.TrimPrefix(t.Value, "@"))
		}
		rule, l, err := consumeQualifiedRule(css, toks[i:])
		if err != nil {
			return nil, err
		}
		tracer().Debugf("css rule %s", rule)
		rules = append(rules, rule)
		i += l
	}
	return rules, nil
}

// consumeQualifiedRule reads a prelude and its block from the beginning of
// toks. It returns the rule and the number of tokens consumed. Closing
// characters without an opener belong to the prelude.
func consumeQualifiedRule(css string, toks tokenstream) (StyleRule, int, error) {
	var stack nesting
	open := -1
	for i, t := range toks {
		if t.bad {
			return StyleRule{}, 0, newParseError(UnexpectedToken, css, t.offset, badStringDetail(t))
		}
		if stack.depth() == 0 && isDelim(t, "{") {
			open = i
			break
		}
		stack.step(t)
	}
	if open < 0 {
		return StyleRule{}, 0, endOfInput(css)
	}
	if isBlankStream(toks[:open]) {
		return StyleRule{}, 0, newParseError(InvalidQualifiedRule, css, toks[open].offset, "")
	}
	l := findClosingBrace(toks[open+1:])
	if l < 0 {
		return StyleRule{}, 0, endOfInput(css)
	}
	closing := toks[open+1+l]
	rule := StyleRule{
		Selector: css[toks[0].offset:toks[open].offset],
		Block:    css[toks[open].end():closing.offset],
	}
	// prelude + "{" + block + "}"
	return rule, open + l + 2, nil
}

// findClosingBrace returns the number of tokens before the "}" that closes
// the block whose opening brace precedes toks, or -1 if the block is not
// closed.
func findClosingBrace(toks tokenstream) int {
	var stack nesting
	for i, t := range toks {
		if stack.depth() == 0 && isDelim(t, "}") {
			return i
		}
		stack.step(t)
	}
	return -1
}

func isBlankStream(toks tokenstream) bool {
	for _, t := range toks {
		if !isBlank(t) {
			return false
		}
	}
	return true
}

func badStringDetail(t *token) string {
	return "BadString(" + strconv.Quote(t.Value[1:]) + ")"
}

func endOfInput(css string) *ParseError {
	return newParseError(EndOfInput, css, len(css), "")
}
