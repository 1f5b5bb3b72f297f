package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenQuote               // Single quote: "'"
	TokenDot                 // Dot: "."
	TokenInteger             // Optionally signed run of digits
	TokenSymbol              // Identifier, including "#t" and "#f"
	TokenEOF                 // End of stream
)

var (
	symbolStart = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ<=>*/#")
	symbolBody  = append(append([]rune{}, symbolStart...), []rune("0123456789?!-")...)
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenQuote:     []rune{'\''},
	TokenDot:       []rune{'.'},
	TokenInteger:   []rune("0123456789"),
	TokenSymbol:    symbolStart,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenQuote:     "quote",
	TokenDot:       "dot",
	TokenInteger:   "integer",
	TokenSymbol:    "symbol",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isAritmeticSign(p rune) bool {
	return p == '+' || p == '-'
}
