package template

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// builtins returns the default helper set.
func builtins() map[string]Helper {
	return map[string]Helper{
		"upper":      unary("upper", strings.ToUpper),
		"lower":      unary("lower", strings.ToLower),
		"capitalize": unary("capitalize", capitalize),
		"trim":       unary("trim", strings.TrimSpace),
		"title":      unary("title", cases.Title(language.English).String),
		"quote":      unary("quote", strconv.Quote),
		"default":    defaultHelper,
	}
}

// unary wraps a single-argument string transform with arity checking.
func unary(name string, fn func(string) string) Helper {
	return func(args ...string) (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("helper %q expects 1 argument, got %d", name, len(args))
		}
		return fn(args[0]), nil
	}
}

// defaultHelper returns its first argument when non-empty, otherwise the
// fallback.
func defaultHelper(args ...string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("helper %q expects 2 arguments, got %d", "default", len(args))
	}
	if args[0] != "" {
		return args[0], nil
	}
	return args[1], nil
}

// capitalize uppercases the first rune and leaves the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
