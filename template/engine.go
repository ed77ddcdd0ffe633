package template

import (
	"fmt"
	"sort"
	"strings"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Helper transforms resolved argument values into output text.
// Helpers must be pure: same arguments, same result, no side effects.
type Helper func(args ...string) (string, error)

// Engine renders templates against a map of string variables.
// The built-in helper set is registered at construction; a zero Engine
// is not usable, create one with New.
type Engine struct {
	helpers map[string]Helper
}

// New creates an engine with the built-in helpers registered.
func New() *Engine {
	return &Engine{helpers: builtins()}
}

// RegisterHelper adds a custom helper. Registering over an existing name
// replaces it.
func (e *Engine) RegisterHelper(name string, fn Helper) {
	e.helpers[name] = fn
}

// Render substitutes every expression in tmpl using vars and returns the
// result. Text outside expressions is copied verbatim. A variable absent
// from vars renders as the empty string. Returns *Error on malformed
// syntax or an unknown helper.
func (e *Engine) Render(tmpl string, vars map[string]string) (string, error) {
	var out strings.Builder
	rest := tmpl
	offset := 0

	for {
		i := strings.Index(rest, openDelim)
		if i < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:i])

		exprStart := offset + i
		body := rest[i+len(openDelim):]
		j := strings.Index(body, closeDelim)
		if j < 0 {
			return "", &Error{Offset: exprStart, Msg: "unclosed expression"}
		}
		inner := body[:j]
		if strings.Contains(inner, openDelim) {
			return "", &Error{Offset: exprStart, Msg: "nested delimiters in expression"}
		}

		value, err := e.eval(inner, exprStart, vars)
		if err != nil {
			return "", err
		}
		out.WriteString(value)

		consumed := i + len(openDelim) + j + len(closeDelim)
		rest = rest[consumed:]
		offset += consumed
	}

	return out.String(), nil
}

// Validate checks tmpl for syntax errors without needing a context.
// It performs a full render pass against an empty context and discards
// the output, so it also catches unknown helpers and bad arity.
func (e *Engine) Validate(tmpl string) error {
	_, err := e.Render(tmpl, nil)
	return err
}

// ExtractVariables returns the sorted, deduplicated variable names
// referenced by tmpl: bare substitutions plus unquoted helper arguments.
// Helper names and quoted literals are excluded.
func (e *Engine) ExtractVariables(tmpl string) ([]string, error) {
	seen := make(map[string]bool)
	rest := tmpl
	offset := 0

	for {
		i := strings.Index(rest, openDelim)
		if i < 0 {
			break
		}
		exprStart := offset + i
		body := rest[i+len(openDelim):]
		j := strings.Index(body, closeDelim)
		if j < 0 {
			return nil, &Error{Offset: exprStart, Msg: "unclosed expression"}
		}

		tokens, err := splitTokens(body[:j])
		if err != nil {
			return nil, &Error{Offset: exprStart, Msg: err.Error()}
		}
		refs := tokens
		if len(tokens) > 1 {
			refs = tokens[1:] // first token is the helper name
		}
		for _, tok := range refs {
			if _, quoted := unquote(tok); !quoted {
				seen[tok] = true
			}
		}

		consumed := i + len(openDelim) + j + len(closeDelim)
		rest = rest[consumed:]
		offset += consumed
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CheckVariables returns the variables referenced by tmpl that are not
// present in vars.
func (e *Engine) CheckVariables(tmpl string, vars map[string]string) ([]string, error) {
	required, err := e.ExtractVariables(tmpl)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range required {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// eval resolves a single expression body. A lone token is a variable
// lookup (or a quoted literal); multiple tokens are a helper call.
func (e *Engine) eval(inner string, pos int, vars map[string]string) (string, error) {
	tokens, err := splitTokens(inner)
	if err != nil {
		return "", &Error{Offset: pos, Msg: err.Error()}
	}
	if len(tokens) == 0 {
		return "", &Error{Offset: pos, Msg: "empty expression"}
	}

	if len(tokens) == 1 {
		if lit, quoted := unquote(tokens[0]); quoted {
			return lit, nil
		}
		return vars[tokens[0]], nil
	}

	name := tokens[0]
	fn, ok := e.helpers[name]
	if !ok {
		return "", &Error{Offset: pos, Msg: fmt.Sprintf("unknown helper %q", name)}
	}

	args := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		if lit, quoted := unquote(tok); quoted {
			args = append(args, lit)
		} else {
			args = append(args, vars[tok])
		}
	}

	result, err := fn(args...)
	if err != nil {
		return "", &Error{Offset: pos, Msg: err.Error()}
	}
	return result, nil
}

// splitTokens splits an expression body on ASCII whitespace, keeping
// double-quoted runs intact so literals may contain spaces.
func splitTokens(s string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		if s[i] == '"' {
			i++
			for i < len(s) && s[i] != '"' {
				i++
			}
			if i >= len(s) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			i++
		} else {
			for i < len(s) && !isSpace(s[i]) {
				i++
			}
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens, nil
}

// unquote strips surrounding double quotes. The second result reports
// whether the token was a quoted literal.
func unquote(tok string) (string, bool) {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return tok[1 : len(tok)-1], true
	}
	return tok, false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
