package form

import (
	"fmt"
	"strings"
)

// MessageTable resolves the human-readable message of a failing rule.
// params carries the rule arguments, such as "min" for minlength.
type MessageTable interface {
	Message(rule string, params map[string]any) (string, bool)
}

// Messages is a MessageTable backed by a plain map. Messages may reference
// rule arguments as {name}.
type Messages map[string]string

func (m Messages) Message(rule string, params map[string]any) (string, bool) {
	msg, ok := m[rule]
	if !ok {
		return "", false
	}
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprint(v))
	}
	return msg, true
}

// DeriveMessage returns the message to display for c: empty until the control
// has been touched or changed and while it passes. Messages of the failing
// rules are joined with a single space in rule declaration order. Rules with
// no message in t are skipped.
func DeriveMessage(c Control, t MessageTable) string {
	if c == nil || t == nil {
		return ""
	}
	if !c.Touched() && !c.Dirty() {
		return ""
	}
	errs := c.Errors()
	if len(errs) == 0 {
		return ""
	}

	var (
		names  = errs.Names()
		params func(string) map[string]any
	)
	if f, ok := c.(*Field); ok {
		names = f.failing()
		params = f.params
	}

	messages := make([]string, 0, len(names))
	for _, name := range names {
		var p map[string]any
		if params != nil {
			p = params(name)
		}
		if msg, ok := t.Message(name, p); ok && msg != "" {
			messages = append(messages, msg)
		}
	}
	return strings.Join(messages, " ")
}

// DeriveMessages derives the message of every control of g, keyed by path.
// Controls with nothing to display are left out; the root group uses "".
func DeriveMessages(g *Group, t MessageTable) map[string]string {
	out := make(map[string]string)
	if msg := DeriveMessage(g, t); msg != "" {
		out[""] = msg
	}
	Walk(g, func(path string, c Control) {
		if msg := DeriveMessage(c, t); msg != "" {
			out[path] = msg
		}
	})
	return out
}
