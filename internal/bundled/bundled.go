// Package bundled holds the built-in templates shipped inside the binary.
// They pre-populate an empty template store so the tool works without any
// manual install step.
package bundled

import (
	_ "embed"
)

// DefaultName is the name of the built-in template and the default template
// recorded in a freshly created config.
const DefaultName = "Programming-Team"

// ProgrammingTeam is the content of the Programming-Team template.
//
//go:embed templates/programming-team.md
var ProgrammingTeam string

// Template is a built-in template.
type Template struct {
	Name    string
	Content string
}

// Templates returns every built-in template.
func Templates() []Template {
	return []Template{
		{Name: DefaultName, Content: ProgrammingTeam},
	}
}
