// Package promptkit manages system prompts for an application: a default
// prompt plus a set of named prompts stored in the platform config
// directory, with variable substitution through a small mustache-style
// template syntax.
//
// The package is organized into subpackages by domain:
//
//   - template: Template rendering with built-in and custom helpers
//   - storage: File-backed and in-memory prompt persistence
//
// # Quick Start
//
//	manager, err := promptkit.New()
//	if err != nil {
//	    return err
//	}
//
//	// Load the default system prompt (factory fallback if none saved)
//	prompt, _ := manager.LoadDefault()
//
//	// Save and load named prompts
//	_ = manager.SavePrompt("coding", "You are an expert Go programmer.")
//	coding, _ := manager.LoadPrompt("coding")
//
//	// Render a template with variables
//	rendered, err := manager.RenderTemplate(
//	    "You are a {{role}} specializing in {{upper language}}.",
//	    map[string]string{"role": "programmer", "language": "go"},
//	)
//
// See the template package for the full expression syntax and the list of
// built-in helpers.
package promptkit
