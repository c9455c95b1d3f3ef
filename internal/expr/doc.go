// Package expr parses and evaluates a restricted arithmetic grammar.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = "-" unary | "+" unary | primary
//	primary = number | "(" expr ")"
//	number = digits [ "." digits ] [ ("e" | "E") [ "+" | "-" ] digits ]
//
// Whitespace between tokens is ignored. Anything else is rejected with
// ErrInvalidExpression; nothing is ever handed to a general interpreter.
package expr
