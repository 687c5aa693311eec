package parser

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if ch == ';' {
		return l.scanComment(startPos)
	}

	if isSpace(ch) {
		return l.scanWhitespace(startPos)
	}

	switch ch {
	case '(':
		return l.scanOpenBracket(startPos)
	case ')':
		l.advance()
		return l.token(TokenCloseBracket, startPos)
	case ':':
		return l.scanKeyword(startPos)
	case '?':
		return l.scanVariable(startPos)
	}

	if ch == '-' {
		if isDigit(l.peekN(1)) {
			return l.scanNumber(startPos)
		}
		l.advance()
		return l.token(TokenDash, startPos)
	}

	if isDigit(ch) {
		return l.scanNumber(startPos)
	}

	if isNameStart(ch) {
		l.scanWord()
		return l.token(TokenIdentifier, startPos)
	}

	l.advance()
	return l.token(TokenOther, startPos)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

// scanComment consumes a ";" comment up to (not including) the newline.
func (l *Lexer) scanComment(start Position) Token {
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	return l.token(TokenComment, start)
}

// scanOpenBracket fuses the bracket with a following operator word, so that
// "(define", "( :action" or "(at start" come out as a single token. A bracket
// followed by an ordinary name, like "(truck-at", stays a plain open bracket.
func (l *Lexer) scanOpenBracket(start Position) Token {
	l.advance() // "("

	mark := l.pos
	markLine, markColumn := l.line, l.column
	for isSpace(l.peek()) {
		l.advance()
	}

	if l.peek() == ':' {
		l.advance()
		l.scanWord()
		return l.token(TokenOpenBracketOperator, start)
	}

	if isOperatorSymbol(l.peek()) {
		l.advance()
		if l.peek() == '=' { // ">=", "<="
			l.advance()
		}
		return l.token(TokenOpenBracketOperator, start)
	}

	if isNameStart(l.peek()) {
		wordStart := l.pos
		l.scanWord()
		word := string(l.input[wordStart:l.pos])

		switch word {
		case "at", "over":
			if rest := l.fuseTimeQualifier(word); rest {
				return l.token(TokenOpenBracketOperator, start)
			}
		}
		if operatorWords[word] {
			return l.token(TokenOpenBracketOperator, start)
		}

		// Not an operator: rewind so the word is lexed on its own.
		l.pos = wordStart
		l.line, l.column = markLine, markColumn
		for p := mark; p < wordStart; p++ {
			if l.input[p] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		}
		return l.token(TokenOpenBracket, start)
	}

	return l.token(TokenOpenBracket, start)
}

// fuseTimeQualifier extends "at" to "at start"/"at end" and "over" to
// "over all". Returns false (consuming nothing further) for plain "(at ...)".
func (l *Lexer) fuseTimeQualifier(word string) bool {
	save := *l
	if !isSpace(l.peek()) {
		return false
	}
	for isSpace(l.peek()) {
		l.advance()
	}
	nextStart := l.pos
	l.scanWord()
	next := string(l.input[nextStart:l.pos])

	ok := (word == "at" && (next == "start" || next == "end")) ||
		(word == "over" && next == "all")
	if !ok {
		*l = save
	}
	return ok
}

func (l *Lexer) scanKeyword(start Position) Token {
	l.advance() // ":"
	l.scanWord()
	return l.token(TokenKeyword, start)
}

func (l *Lexer) scanVariable(start Position) Token {
	l.advance() // "?"
	l.scanWord()
	return l.token(TokenVariable, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '-' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanWord() {
	for isNamePart(l.peek()) {
		l.advance()
	}
}

// operatorWords are names that open a nested form rather than naming a
// predicate, so the bracket token swallows them.
var operatorWords = map[string]bool{
	"define":     true,
	"domain":     true,
	"problem":    true,
	"and":        true,
	"or":         true,
	"not":        true,
	"imply":      true,
	"when":       true,
	"forall":     true,
	"exists":     true,
	"preference": true,
	"assign":     true,
	"increase":   true,
	"decrease":   true,
	"scale-up":   true,
	"scale-down": true,
	"minimize":   true,
	"maximize":   true,
	"either":     true,
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNameStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isNamePart(ch byte) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '-'
}

func isOperatorSymbol(ch byte) bool {
	return ch == '=' || ch == '<' || ch == '>' || ch == '+' || ch == '-' ||
		ch == '*' || ch == '/'
}
