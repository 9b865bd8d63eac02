package components

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Decl is a single CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// CSS is an ordered list of declarations rendered into an inline style
// attribute. Order is kept as written so markup stays byte-stable.
type CSS []Decl

func (c CSS) String() string {
	parts := make([]string, 0, len(c))
	for _, d := range c {
		if d.Property == "" || d.Value == "" {
			continue
		}
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Attr returns the style attribute node.
func (c CSS) Attr() g.Node {
	return g.Attr("style", c.String())
}
