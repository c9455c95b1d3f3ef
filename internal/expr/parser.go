package expr

import (
	"strconv"
	"strings"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// lex splits input into tokens. Offsets are character offsets.
func lex(input string) ([]token, error) {
	runes := []rune(input)
	var tokens []token
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{kind: tokOp, text: string(r), offset: i})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", offset: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", offset: i})
			i++
		case isDigit(r) || r == '.':
			start := i
			i = scanNumber(runes, i)
			tokens = append(tokens, token{kind: tokNumber, text: string(runes[start:i]), offset: start})
		default:
			return nil, &SyntaxError{Offset: i, Message: "unexpected character " + strconv.QuoteRune(r)}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, offset: len(runes)})
	return tokens, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// scanNumber returns the end of the number literal starting at i.
func scanNumber(runes []rune, i int) int {
	for i < len(runes) && (isDigit(runes[i]) || runes[i] == '.') {
		i++
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && isDigit(runes[j]) {
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

type parser struct {
	tokens []token
	pos    int
}

// Parse parses input into an expression tree.
func Parse(input string) (Node, error) {
	if strings.TrimSpace(input) == "" {
		return nil, &SyntaxError{Offset: 0, Message: "empty expression"}
	}
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Offset: tok.offset, Message: "unexpected " + strconv.Quote(tok.text)}
	}
	return n, nil
}

// Eval parses and evaluates input.
func Eval(input string) (float64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return n.Eval()
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: Op(tok.text[0]), Left: left, Right: right}
	}
}

func (p *parser) term() (Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = BinaryOp{Op: Op(tok.text[0]), Left: left, Right: right}
	}
}

func (p *parser) unary() (Node, error) {
	tok := p.peek()
	if tok.kind == tokOp && (tok.text == "-" || tok.text == "+") {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		if tok.text == "+" {
			return operand, nil
		}
		return BinaryOp{Op: Sub, Left: Number{}, Right: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: tok.offset, Message: "bad number " + strconv.Quote(tok.text)}
		}
		return Number{Value: v}, nil
	case tokLParen:
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &SyntaxError{Offset: closing.offset, Message: "missing closing parenthesis"}
		}
		return n, nil
	case tokEOF:
		return nil, &SyntaxError{Offset: tok.offset, Message: "unexpected end of expression"}
	default:
		return nil, &SyntaxError{Offset: tok.offset, Message: "unexpected " + strconv.Quote(tok.text)}
	}
}
