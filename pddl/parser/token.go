package parser

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment

	// Document is never produced by the lexer; it is the kind of the
	// synthetic root node the tree builder wraps around a file.
	TokenDocument

	TokenOpenBracket
	// OpenBracketOperator is an open bracket fused with the operator word
	// that follows it: "(define", "(:action", "(and", "(at start", "(=".
	// The fused text is what scope patterns match against.
	TokenOpenBracketOperator
	TokenCloseBracket

	TokenKeyword  // ":parameters", ":strips"
	TokenVariable // "?truck"
	TokenDash
	TokenNumber
	TokenIdentifier
	TokenOther
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:                 "EOF",
	TokenError:               "Error",
	TokenWhitespace:          "Whitespace",
	TokenComment:             "Comment",
	TokenDocument:            "Document",
	TokenOpenBracket:         "OpenBracket",
	TokenOpenBracketOperator: "OpenBracketOperator",
	TokenCloseBracket:        "CloseBracket",
	TokenKeyword:             "Keyword",
	TokenVariable:            "Variable",
	TokenDash:                "Dash",
	TokenNumber:              "Number",
	TokenIdentifier:          "Identifier",
	TokenOther:               "Other",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
