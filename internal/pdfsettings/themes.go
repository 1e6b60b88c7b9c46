package pdfsettings

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTheme is returned by ApplyTheme for a name with no theme record
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is a named color triple
type Theme struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

var themes = map[string]Theme{
	"default":   {Name: "default", Label: "Default Blue", Primary: "#1E40AF", Secondary: "#64748B", Accent: "#0EA5E9"},
	"corporate": {Name: "corporate", Label: "Corporate", Primary: "#111827", Secondary: "#4B5563", Accent: "#2563EB"},
	"modern":    {Name: "modern", Label: "Modern Purple", Primary: "#6D28D9", Secondary: "#6B7280", Accent: "#EC4899"},
	"nature":    {Name: "nature", Label: "Nature Green", Primary: "#15803D", Secondary: "#57534E", Accent: "#84CC16"},
	"warm":      {Name: "warm", Label: "Warm Orange", Primary: "#C2410C", Secondary: "#78716C", Accent: "#F59E0B"},
	"elegant":   {Name: "elegant", Label: "Elegant Slate", Primary: "#334155", Secondary: "#94A3B8", Accent: "#B45309"},
}

// Themes returns every theme sorted by name.
func Themes() []Theme {
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupTheme finds a theme by name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ApplyTheme returns s with colors.primary/secondary/accent taken from the
// named theme. All other fields are unchanged.
func ApplyTheme(s PdfSettings, name string) (PdfSettings, error) {
	t, ok := themes[name]
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return WithTheme(s, t), nil
}

// WithTheme copies the theme colors onto s.
func WithTheme(s PdfSettings, t Theme) PdfSettings {
	s.Colors.Primary = t.Primary
	s.Colors.Secondary = t.Secondary
	s.Colors.Accent = t.Accent
	return s
}
