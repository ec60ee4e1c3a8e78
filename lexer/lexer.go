/*
 * Radon
 *
 * Copyright 2019 The Radon Authors.
 * Code is licensed under the GPLv3.
 *
 */

package lexer

// Lexer is a single-pass cursor over the input.
// It is not safe for concurrent use.
type Lexer struct {
	input        string
	dictionary   *Dictionary
	dialect      Dialect
	offset       int
	currentToken Token
}

// NewLexer creates the new lexer, the dictionary gets the dialect keywords.
func NewLexer(input string, dialect Dialect) *Lexer {
	if dialect == nil {
		dialect = &DefaultDialect{}
	}
	return NewLexerWithDictionary(input, dialect, NewDictionary(dialect.Keywords()))
}

// NewLexerWithDictionary creates the new lexer with an explicit dictionary.
func NewLexerWithDictionary(input string, dialect Dialect, dictionary *Dictionary) *Lexer {
	return &Lexer{
		input:      input,
		dictionary: dictionary,
		dialect:    dialect,
	}
}

// Offset returns the cursor position.
func (l *Lexer) Offset() int {
	return l.offset
}

// CurrentToken returns the last token produced by NextToken.
func (l *Lexer) CurrentToken() Token {
	return l.currentToken
}

// CharAt returns the char at the cursor plus the delta, or EOI out of range.
func (l *Lexer) CharAt(delta int) byte {
	index := l.offset + delta
	if index < 0 || index >= len(l.input) {
		return EOI
	}
	return l.input[index]
}

func (l *Lexer) tokenizer() *Tokenizer {
	t := NewTokenizer(l.input, l.dictionary, l.offset)
	t.backslashEscape = l.dialect.SupportBackslashEscape()
	return t
}

// NextToken advances the cursor past the next token.
func (l *Lexer) NextToken() error {
	var err error
	var token Token

	if err = l.skipIgnoredToken(); err != nil {
		return err
	}
	switch {
	case l.dialect.IsVariableBegin(l):
		token = l.tokenizer().ScanVariable()
	case l.isNCharBegin():
		l.offset++
		token, err = l.tokenizer().ScanChars()
	case l.dialect.IsIdentifierBegin(l.CharAt(0)):
		token, err = l.tokenizer().ScanIdentifier()
	case l.isHexDecimalBegin():
		token = l.tokenizer().ScanHexDecimal()
	case l.isNumberBegin():
		token = l.tokenizer().ScanNumber()
	case IsSymbol(l.CharAt(0)):
		token = l.tokenizer().ScanSymbol()
	case l.isCharsBegin():
		token, err = l.tokenizer().ScanChars()
	case l.isEnd():
		token = Token{Type: END, Start: l.offset, End: l.offset}
	default:
		return &UnexpectedCharacterError{Offset: l.offset, Char: l.CharAt(0)}
	}
	if err != nil {
		return err
	}
	l.currentToken = token
	l.offset = token.End
	return nil
}

// skipIgnoredToken skips whitespace, hints and comments until none is left.
func (l *Lexer) skipIgnoredToken() error {
	var err error

	l.offset = l.tokenizer().SkipWhitespace()
	for {
		switch {
		case l.dialect.IsHintBegin(l):
			if l.offset, err = l.tokenizer().SkipHint(); err != nil {
				return err
			}
		case l.dialect.IsCommentBegin(l):
			if l.offset, err = l.tokenizer().SkipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
		l.offset = l.tokenizer().SkipWhitespace()
	}
}

func (l *Lexer) isNCharBegin() bool {
	return l.dialect.SupportNChars() && l.CharAt(0) == 'N' && l.CharAt(1) == '\''
}

func (l *Lexer) isHexDecimalBegin() bool {
	return l.CharAt(0) == '0' && l.CharAt(1) == 'x'
}

// isNumberBegin: a leading '.' or '-' right after an identifier char is an operator.
func (l *Lexer) isNumberBegin() bool {
	current, next := l.CharAt(0), l.CharAt(1)
	if IsDigital(current) {
		return true
	}
	switch current {
	case '.':
		return IsDigital(next) && !l.followsIdentifier()
	case '-':
		return (next == '.' || IsDigital(next)) && !l.followsIdentifier()
	}
	return false
}

func (l *Lexer) followsIdentifier() bool {
	prev := l.CharAt(-1)
	return IsIdentifierChar(prev) || prev == '`'
}

func (l *Lexer) isCharsBegin() bool {
	current := l.CharAt(0)
	return current == '\'' || current == '"'
}

func (l *Lexer) isEnd() bool {
	return l.offset >= len(l.input)
}

// Tokens drains the lexer, the last token is END.
func (l *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		if err := l.NextToken(); err != nil {
			return tokens, err
		}
		tokens = append(tokens, l.currentToken)
		if l.currentToken.Type == END {
			return tokens, nil
		}
	}
}
