// Package template renders prompt templates with variable substitution.
//
// Templates use double-brace expressions. A bare name looks up a variable;
// a name followed by arguments calls a helper:
//
//	Hello, {{name}}!
//	Hello, {{capitalize name}}!
//	Level: {{default experience "beginner"}}
//
// Variables absent from the context render as the empty string. Quoted
// arguments are literals; unquoted arguments are variable lookups.
// Rendering is a single pass over the input: helper output is never
// re-scanned for further expressions.
//
// # Built-in Helpers
//
//   - upper x - Convert to uppercase
//   - lower x - Convert to lowercase
//   - capitalize x - Uppercase the first character, leave the rest unchanged
//   - default x fallback - x if non-empty, otherwise fallback
//   - trim x - Remove leading/trailing whitespace
//   - title x - English title case
//   - quote x - Double-quote with escaping
//
// # Example
//
//	engine := template.New()
//	result, err := engine.Render("Hello, {{upper name}}!", map[string]string{"name": "ana"})
//	// result: "Hello, ANA!"
//
// Custom helpers can be added with RegisterHelper:
//
//	engine.RegisterHelper("shout", func(args ...string) (string, error) {
//	    return strings.ToUpper(args[0]) + "!", nil
//	})
package template
