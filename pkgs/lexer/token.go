package lexer

import "fmt"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	EOF TokenType = iota
	ILLEGAL

	// Keywords (case-sensitive, exhaustive per the grammar)
	CONSTRUCT
	CENTRAL
	LAYOUT
	MODULE
	DECLARE
	IMPORTS
	TYPEFACES
	BREAKPOINTS
	THEMES
	ALIASES
	VARIABLES
	ANIMATION
	CLASS
	EXTENDING
	IMPORTANT
	STYLESHEET
	PANORAMICVIEWER
	HOVER
	ACTIVE
	FOCUS
	MOBILEFIRST
	DESKTOPFIRST
	LIGHT
	DARK
	FROM
	HALFWAY
	TO
	FRACTION
	PROGRESSIVE

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Punctuation
	LBRACE // {
	RBRACE // }
	LPAREN // (
	RPAREN // )
	COMMA  // ,
	COLON  // :
	SEMI   // ;
	DOT    // .
	DOLLAR // $

	// Interpolation markers. NextToken never emits these: a ${name}
	// interpolation is recorded as a Fragments entry of its STRING token.
	INTERP_OPEN  // ${
	INTERP_CLOSE // } that closes an interpolation
)

var tokenNames = map[TokenType]string{
	EOF:             "EOF",
	ILLEGAL:         "ILLEGAL",
	CONSTRUCT:       "Construct",
	CENTRAL:         "Central",
	LAYOUT:          "Layout",
	MODULE:          "Module",
	DECLARE:         "Declare",
	IMPORTS:         "Imports",
	TYPEFACES:       "Typefaces",
	BREAKPOINTS:     "Breakpoints",
	THEMES:          "Themes",
	ALIASES:         "Aliases",
	VARIABLES:       "Variables",
	ANIMATION:       "Animation",
	CLASS:           "Class",
	EXTENDING:       "Extending",
	IMPORTANT:       "Important",
	STYLESHEET:      "Stylesheet",
	PANORAMICVIEWER: "PanoramicViewer",
	HOVER:           "Hover",
	ACTIVE:          "Active",
	FOCUS:           "Focus",
	MOBILEFIRST:     "MobileFirst",
	DESKTOPFIRST:    "DesktopFirst",
	LIGHT:           "Light",
	DARK:            "Dark",
	FROM:            "From",
	HALFWAY:         "Halfway",
	TO:              "To",
	FRACTION:        "Fraction",
	PROGRESSIVE:     "Progressive",
	IDENTIFIER:      "identifier",
	STRING:          "string literal",
	NUMBER:          "number",
	LBRACE:          "{",
	RBRACE:          "}",
	LPAREN:          "(",
	RPAREN:          ")",
	COMMA:           ",",
	COLON:           ":",
	SEMI:            ";",
	DOT:             ".",
	DOLLAR:          "$",
	INTERP_OPEN:     "${",
	INTERP_CLOSE:    "}",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Keywords is the static, read-only keyword table populated once at package
// init. Grammar keywords are matched case-sensitively and verbatim against
// this map — lowercase "declare" is never treated as "Declare".
var Keywords = map[string]TokenType{
	"Construct":       CONSTRUCT,
	"Central":         CENTRAL,
	"Layout":          LAYOUT,
	"Module":          MODULE,
	"Declare":         DECLARE,
	"Imports":         IMPORTS,
	"Typefaces":       TYPEFACES,
	"Breakpoints":     BREAKPOINTS,
	"Themes":          THEMES,
	"Aliases":         ALIASES,
	"Variables":       VARIABLES,
	"Animation":       ANIMATION,
	"Class":           CLASS,
	"Extending":       EXTENDING,
	"Important":       IMPORTANT,
	"Stylesheet":      STYLESHEET,
	"PanoramicViewer": PANORAMICVIEWER,
	"Hover":           HOVER,
	"Active":          ACTIVE,
	"Focus":           FOCUS,
	"MobileFirst":     MOBILEFIRST,
	"DesktopFirst":    DESKTOPFIRST,
	"Light":           LIGHT,
	"Dark":            DARK,
	"From":            FROM,
	"Halfway":         HALFWAY,
	"To":              TO,
	"Fraction":        FRACTION,
	"Progressive":     PROGRESSIVE,
}

// KeywordNames lists every keyword lexeme. The diagnostics package fuzzy
// matches against this slice to suggest corrections for miscased or
// misspelled keywords.
var KeywordNames = func() []string {
	names := make([]string, 0, len(Keywords))
	for k := range Keywords {
		names = append(names, k)
	}
	return names
}()

// SourcePosition is a 1-based line/column plus a 0-based byte offset.
type SourcePosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// SourceSpan is a half-open byte range plus the line/column of Start.
type SourceSpan struct {
	Start SourcePosition `json:"start"`
	End   SourcePosition `json:"end"`
}

// Contains reports whether other is a subset of s, i.e. s is a valid parent
// span for other.
func (s SourceSpan) Contains(other SourceSpan) bool {
	return other.Start.Offset >= s.Start.Offset && other.End.Offset <= s.End.Offset
}

// Join returns the smallest span covering both s and other.
func (s SourceSpan) Join(other SourceSpan) SourceSpan {
	joined := s
	if other.Start.Offset < joined.Start.Offset {
		joined.Start = other.Start
	}
	if other.End.Offset > joined.End.Offset {
		joined.End = other.End
	}
	return joined
}

// StringFragment is either a literal run of text or a ${name} reference
// captured while scanning a STRING token.
type StringFragment struct {
	IsInterpolation bool
	Text            string // literal text, when !IsInterpolation
	Name            string // identifier, when IsInterpolation
	Span            SourceSpan
}

// Token is a single lexical unit with a precise source span.
type Token struct {
	Type  TokenType
	Value string // raw lexeme; for STRING, the unescaped literal value
	Span  SourceSpan

	// Fragments holds the decomposed pieces of a STRING token that
	// contains one or more ${ident} interpolations. It is nil for plain
	// strings and for all non-STRING tokens.
	Fragments []StringFragment
}

func (t Token) Line() int   { return t.Span.Start.Line }
func (t Token) Column() int { return t.Span.Start.Column }
