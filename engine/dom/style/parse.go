package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ErrSyntax is returned for declaration blocks which cannot be parsed.
var ErrSyntax = errors.New("CSS syntax error")

// Parse creates a style from a CSS declaration block, as found in a `style`
// attribute. Shorthand properties for margins, paddings, border widths and
// border radii are expanded into their longhand forms.
func Parse(decls string) (*Style, error) {
	s := New()
	if err := s.Apply(decls); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply parses a declaration block and sets every property found.
func (s *Style) Apply(decls string) error {
	decls = strings.TrimSpace(decls)
	if decls == "" {
		return nil
	}
	if !strings.HasSuffix(decls, ";") {
		decls += ";" // terminate the last declaration
	}
	dd, err := parser.ParseDeclarations(decls)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	for _, d := range dd {
		s.applyDeclaration(d)
	}
	return nil
}

func (s *Style) applyDeclaration(d *css.Declaration) {
	key := strings.ToLower(strings.TrimSpace(d.Property))
	value := strings.TrimSpace(d.Value)
	tracer().Debugf("style: %s = %q", key, value)
	switch key {
	case "margin", "padding":
		s.setEdges(key+"-%s", value)
	case "border-width":
		s.setEdges("border-%s-width", value)
	case "border-radius":
		s.setCorners(value)
	default:
		s.SetPropertyValue(key, Property(value))
	}
}

// Edges is the CSS order of box edges for shorthand properties.
var Edges = [4]string{"top", "right", "bottom", "left"}

// Corners is the CSS order of box corners for border-radius.
var Corners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func (s *Style) setEdges(pattern string, value string) {
	v := expandFour(strings.Fields(value))
	for i, e := range Edges {
		s.SetPropertyValue(fmt.Sprintf(pattern, e), Property(v[i]))
	}
}

func (s *Style) setCorners(value string) {
	v := expandFour(strings.Fields(value))
	for i, c := range Corners {
		s.SetPropertyValue("border-"+c+"-radius", Property(v[i]))
	}
}

// expandFour implements the 1-to-4 value rule of CSS box shorthands.
func expandFour(f []string) [4]string {
	switch len(f) {
	case 0:
		return [4]string{"0", "0", "0", "0"}
	case 1:
		return [4]string{f[0], f[0], f[0], f[0]}
	case 2:
		return [4]string{f[0], f[1], f[0], f[1]}
	case 3:
		return [4]string{f[0], f[1], f[2], f[1]}
	}
	return [4]string{f[0], f[1], f[2], f[3]}
}
