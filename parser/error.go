package parser

import (
	"fmt"
	"strings"
)

// ErrorType 定义错误类型
type ErrorType int

const (
	ErrorTypeSyntax ErrorType = iota
	ErrorTypeLexical
	ErrorTypeUnexpectedToken
	ErrorTypeMissingToken
	ErrorTypeInvalidNumber
	ErrorTypeUnterminatedString
	ErrorTypeUnknownFunction
	ErrorTypeMaxDepth
)

// ParseError 解析错误，携带位置、期望集合和修复建议
type ParseError struct {
	Type        ErrorType
	Message     string
	Position    int
	Line        int
	Column      int
	Token       string
	Expected    []string
	Suggestions []string
	Recoverable bool
}

// Error 实现 error 接口
func (e *ParseError) Error() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("[%s] %s", e.getErrorTypeName(), e.Message))

	if e.Line > 0 && e.Column > 0 {
		builder.WriteString(fmt.Sprintf(" at line %d, column %d", e.Line, e.Column))
	} else if e.Position >= 0 {
		builder.WriteString(fmt.Sprintf(" at position %d", e.Position))
	}

	if e.Token != "" {
		builder.WriteString(fmt.Sprintf(" (found '%s')", e.Token))
	}

	if len(e.Expected) > 0 {
		builder.WriteString(fmt.Sprintf(", expected: %s", strings.Join(e.Expected, ", ")))
	}

	if len(e.Suggestions) > 0 {
		builder.WriteString(fmt.Sprintf("\nSuggestions: %s", strings.Join(e.Suggestions, "; ")))
	}

	return builder.String()
}

// getErrorTypeName 获取错误类型名称
func (e *ParseError) getErrorTypeName() string {
	switch e.Type {
	case ErrorTypeSyntax:
		return "SYNTAX_ERROR"
	case ErrorTypeLexical:
		return "LEXICAL_ERROR"
	case ErrorTypeUnexpectedToken:
		return "UNEXPECTED_TOKEN"
	case ErrorTypeMissingToken:
		return "MISSING_TOKEN"
	case ErrorTypeInvalidNumber:
		return "INVALID_NUMBER"
	case ErrorTypeUnterminatedString:
		return "UNTERMINATED_STRING"
	case ErrorTypeUnknownFunction:
		return "UNKNOWN_FUNCTION"
	case ErrorTypeMaxDepth:
		return "MAX_DEPTH"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ErrorListener 收集词法和语法错误
type ErrorListener struct {
	errors []*ParseError
}

// NewErrorListener 创建错误收集器
func NewErrorListener() *ErrorListener {
	return &ErrorListener{
		errors: make([]*ParseError, 0),
	}
}

// Add 添加错误
func (l *ErrorListener) Add(err *ParseError) {
	l.errors = append(l.errors, err)
}

// Errors 获取所有错误
func (l *ErrorListener) Errors() []*ParseError {
	return l.errors
}

// HasErrors 检查是否有错误
func (l *ErrorListener) HasErrors() bool {
	return len(l.errors) > 0
}

// SyntaxErrors 聚合一次解析收集到的全部错误，作为单个error返回给调用方
type SyntaxErrors struct {
	Errors []*ParseError
}

// Error 实现 error 接口，拼接全部错误消息
func (e *SyntaxErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d syntax errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// SemanticShapeError 表示语法合法但结构不可能的输入，
// 出现该错误说明构建器或语法存在缺陷，构建器不做恢复
type SemanticShapeError struct {
	Message string
}

// Error 实现 error 接口
func (e *SemanticShapeError) Error() string {
	return "semantic shape error: " + e.Message
}

// newSyntaxError 创建语法错误
func newSyntaxError(message string, tok Token) *ParseError {
	return &ParseError{
		Type:        ErrorTypeSyntax,
		Message:     message,
		Position:    tok.Pos,
		Line:        tok.Line,
		Column:      tok.Column,
		Token:       tok.Value,
		Recoverable: true,
	}
}

// newLexicalError 创建词法错误
func newLexicalError(typ ErrorType, message string, pos, line, column int, image string) *ParseError {
	return &ParseError{
		Type:        typ,
		Message:     message,
		Position:    pos,
		Line:        line,
		Column:      column,
		Token:       image,
		Suggestions: []string{"Check for invalid characters", "Ensure strings are properly closed"},
		Recoverable: false,
	}
}

// newUnexpectedTokenError 创建意外token错误
func newUnexpectedTokenError(tok Token, expected []string) *ParseError {
	found := tok.Value
	if tok.Type == TokenEOF {
		found = "<EOF>"
	}
	return &ParseError{
		Type:        ErrorTypeUnexpectedToken,
		Message:     fmt.Sprintf("Unexpected token '%s'", found),
		Position:    tok.Pos,
		Line:        tok.Line,
		Column:      tok.Column,
		Token:       found,
		Expected:    expected,
		Suggestions: generateSuggestions(found, expected),
		Recoverable: true,
	}
}

// newUnknownFunctionError 创建未知函数错误
func newUnknownFunctionError(functionName string, tok Token) *ParseError {
	return &ParseError{
		Type:        ErrorTypeUnknownFunction,
		Message:     fmt.Sprintf("Unknown function '%s'", functionName),
		Position:    tok.Pos,
		Line:        tok.Line,
		Column:      tok.Column,
		Token:       functionName,
		Recoverable: true,
	}
}

// newMaxDepthError 创建嵌套深度超限错误
func newMaxDepthError(maxDepth int, tok Token) *ParseError {
	return &ParseError{
		Type:        ErrorTypeMaxDepth,
		Message:     fmt.Sprintf("Nesting depth exceeded maximum of %d", maxDepth),
		Position:    tok.Pos,
		Line:        tok.Line,
		Column:      tok.Column,
		Recoverable: false,
	}
}

// generateSuggestions 基于常见拼写错误生成建议
func generateSuggestions(found string, expected []string) []string {
	suggestions := make([]string, 0)

	if len(expected) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Try using '%s' instead of '%s'", expected[0], found))
	}

	switch strings.ToUpper(found) {
	case "SELCT", "SELET":
		suggestions = append(suggestions, "Did you mean 'SELECT'?")
	case "FORM", "FRM":
		suggestions = append(suggestions, "Did you mean 'FROM'?")
	case "WHER", "WHRE":
		suggestions = append(suggestions, "Did you mean 'WHERE'?")
	case "ODER":
		suggestions = append(suggestions, "Did you mean 'ORDER'?")
	case "LIMTI", "LIMT":
		suggestions = append(suggestions, "Did you mean 'LIMIT'?")
	}

	return suggestions
}
