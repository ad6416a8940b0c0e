package validation

import "strings"

// FieldError is a single violated rule.
type FieldError struct {
	Field string `json:"-"`
	Msg   string `json:"msg"`
}

// Errors collects every violated rule of one validation pass. A write that
// fails validation commits nothing.
type Errors []FieldError

func (e Errors) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns the messages in check order.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Msg
	}
	return msgs
}
