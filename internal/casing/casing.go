// Package casing defines the identifier naming styles used by challenges.
package casing

import "github.com/iancoleman/strcase"

// Rule converts a space-separated lowercase phrase into an identifier.
type Rule func(string) string

// Style pairs a display label with its case rule.
type Style struct {
	Name string
	Rule Rule
}

// Apply converts phrase with the style's rule.
func (s Style) Apply(phrase string) string {
	return s.Rule(phrase)
}

// Camel converts "user name" into "userName".
func Camel(phrase string) string {
	return strcase.ToLowerCamel(phrase)
}

// Snake converts "user name" into "user_name".
func Snake(phrase string) string {
	return strcase.ToSnake(phrase)
}

// Pascal converts "user name" into "UserName".
func Pascal(phrase string) string {
	return strcase.ToCamel(phrase)
}

// Kebab converts "user name" into "user-name".
func Kebab(phrase string) string {
	return strcase.ToKebab(phrase)
}

// UpperSnake converts "user name" into "USER_NAME".
func UpperSnake(phrase string) string {
	return strcase.ToScreamingSnake(phrase)
}

var styles = []Style{
	{Name: "camel case", Rule: Camel},
	{Name: "snake case", Rule: Snake},
	{Name: "pascal case", Rule: Pascal},
	{Name: "kebab case", Rule: Kebab},
	{Name: "upper snake case", Rule: UpperSnake},
}

// Styles returns a copy of the fixed style list.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// Lookup returns the style with the given label.
func Lookup(name string) (Style, bool) {
	for _, s := range styles {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}
