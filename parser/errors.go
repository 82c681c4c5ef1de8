package parser

import "fmt"

// SyntaxError is returned by Parse and Lexer.Tokenize on the first malformed input;
// error recovery is a non-goal, so only one error is ever reported.
type SyntaxError struct {
	Line    int
	Column  int
	Token   string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s (near %q)", e.Line, e.Column, e.Message, e.Token)
}
