package style

import (
	"sort"
	"strings"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/core/percent"
)

// Property is a type for CSS property values.
type Property string

// NullStyle is an unset property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsNone is true for "none" and for an unset value.
func (p Property) IsNone() bool {
	return p == NullStyle || p == "none"
}

// Style is a set of CSS properties for one frame.
//
// Values are kept as specified. GetPropertyValue resolves `inherit` and
// inherited properties against the parent style, falls back to initial
// values, and caches the result until Reset is called.
type Style struct {
	specified map[string]Property
	parent    *Style
	computed  map[string]Property
}

// New creates an empty style.
func New() *Style {
	return &Style{
		specified: make(map[string]Property),
	}
}

// Inherit links s to a parent style.
func (s *Style) Inherit(parent *Style) *Style {
	s.parent = parent
	s.computed = nil
	return s
}

// Parent returns the style s inherits from, if any.
func (s *Style) Parent() *Style {
	return s.parent
}

// GetPropertyValue returns the computed value of a property.
func (s *Style) GetPropertyValue(key string) Property {
	if s == nil {
		return initialValue(key)
	}
	if v, ok := s.computed[key]; ok {
		return v
	}
	v, ok := s.specified[key]
	switch {
	case ok && v == "inherit":
		v = s.parent.GetPropertyValue(key)
	case ok && v == "initial":
		v = initialValue(key)
	case !ok && IsInherited(key) && s.parent != nil:
		v = s.parent.GetPropertyValue(key)
	case !ok:
		v = initialValue(key)
	}
	if s.computed == nil {
		s.computed = make(map[string]Property)
	}
	s.computed[key] = v
	return v
}

// SetPropertyValue sets a property to a specified value.
func (s *Style) SetPropertyValue(key string, value Property) {
	s.specified[key] = value
	if s.computed != nil {
		delete(s.computed, key)
	}
}

// Specified returns the value as specified for this style, without
// inheritance or initial values.
func (s *Style) Specified(key string) (Property, bool) {
	v, ok := s.specified[key]
	return v, ok
}

// Length returns a property as a fixed dimension. Values which are not
// fixed lengths ("auto", percentages, keywords) yield 0 and false.
func (s *Style) Length(key string) (dimen.Dimen, bool) {
	v := s.GetPropertyValue(key)
	d, ispcnt, err := dimen.ParseDimen(v.String())
	if err != nil || ispcnt {
		return 0, false
	}
	return d, true
}

// Percentage returns a property given as a percentage, e.g. `width: 50%`.
// Other values yield false.
func (s *Style) Percentage(key string) (percent.Percent, bool) {
	v := s.GetPropertyValue(key).String()
	if !strings.HasSuffix(strings.TrimSpace(v), "%") {
		return 0, false
	}
	p, err := percent.FromString(v)
	if err != nil {
		return 0, false
	}
	return p, true
}

// Reset clears all computed values. Specified values are kept.
func (s *Style) Reset() {
	s.computed = nil
}

// HasComputed is true if at least one computed value is cached.
func (s *Style) HasComputed() bool {
	return len(s.computed) > 0
}

// ResetClone returns a copy of s holding the specified values and the link
// to the parent style, but no computed values.
func (s *Style) ResetClone() *Style {
	c := New()
	for k, v := range s.specified {
		c.specified[k] = v
	}
	c.parent = s.parent
	return c
}

// Keys returns the names of all specified properties, sorted.
func (s *Style) Keys() []string {
	keys := make([]string, 0, len(s.specified))
	for k := range s.specified {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Style) String() string {
	var b strings.Builder
	for i, k := range s.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s.specified[k].String())
	}
	return b.String()
}

// --- Initial values and inheritance ----------------------------------------

var initialValues = map[string]Property{
	"display":           "inline",
	"position":          "static",
	"float":             "none",
	"clear":             "none",
	"content":           "normal",
	"counter-reset":     "none",
	"counter-increment": "none",
	"page-break-before": "auto",
	"page-break-after":  "auto",
	"list-style-type":   "disc",
	"text-indent":       "0",
	"width":             "auto",
	"height":            "auto",
	"top":               "auto",
	"left":              "auto",
	"bottom":            "auto",
	"right":             "auto",
	"quotes":            "auto",
}

func initialValue(key string) Property {
	if v, ok := initialValues[key]; ok {
		return v
	}
	if strings.HasPrefix(key, "margin-") || strings.HasPrefix(key, "padding-") ||
		(strings.HasPrefix(key, "border-") &&
			(strings.HasSuffix(key, "-width") || strings.HasSuffix(key, "-radius"))) {
		return "0"
	}
	return NullStyle
}

var inheritedProperties = map[string]bool{
	"color":           true,
	"direction":       true,
	"font-family":     true,
	"font-size":       true,
	"font-style":      true,
	"font-weight":     true,
	"line-height":     true,
	"list-style-type": true,
	"quotes":          true,
	"text-align":      true,
	"text-indent":     true,
	"visibility":      true,
	"white-space":     true,
}

// IsInherited is true for properties inherited by default.
func IsInherited(key string) bool {
	return inheritedProperties[key]
}
