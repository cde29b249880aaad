package styles

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-pdf/internal/types"
)

// StyleSpec describes how a block of text is set. It is a plain value: copies
// never alias the registry.
type StyleSpec struct {
	Name              string
	FontName          string
	FontSize          float64
	Leading           float64 // 0 means 1.2 x FontSize
	TextColor         Color
	Background        Color
	HasBackground     bool
	Alignment         Alignment
	SpaceBefore       float64
	SpaceAfter        float64
	LeftIndent        float64
	Underline         bool
	Uppercase         bool
	BorderBottomWidth float64
	BorderBottomColor Color
}

// LineHeight returns the leading, defaulting to 1.2 x font size
func (s StyleSpec) LineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.FontSize * 1.2
}

// Font returns the parsed core font, falling back to Helvetica for unknown names
func (s StyleSpec) Font() Font {
	f, err := ParseFont(s.FontName)
	if err != nil {
		return coreFonts["Helvetica"]
	}
	return f
}

// Registry holds the named styles of one document. It is not safe for
// concurrent mutation; use Clone to hand a copy to another document.
type Registry struct {
	custom  map[string]StyleSpec
	builtin map[string]StyleSpec
}

// NewRegistry returns a registry seeded with the built-in and default custom styles
func NewRegistry() *Registry {
	r := &Registry{builtin: builtinStyles()}
	r.RegisterDefaultStyles()
	return r
}

// RegisterDefaultStyles (re)seeds the default custom catalog, discarding overrides
func (r *Registry) RegisterDefaultStyles() {
	r.custom = defaultCustomStyles()
}

// Register adds or replaces a custom style
func (r *Registry) Register(spec StyleSpec) error {
	if spec.Name == "" {
		return &InvalidStyleError{Field: "name", Message: "style name is required"}
	}
	if _, err := ParseFont(spec.FontName); err != nil {
		return err
	}
	if spec.FontSize <= 0 {
		return &InvalidStyleError{
			Field:   "font_size",
			Value:   fmt.Sprintf("%g", spec.FontSize),
			Message: "must be positive",
		}
	}
	r.custom[spec.Name] = spec
	return nil
}

// Resolve returns the custom style with the given name, else the built-in
// style, else Normal. It never fails.
func (r *Registry) Resolve(name string) StyleSpec {
	if s, ok := r.custom[name]; ok {
		return s
	}
	if s, ok := r.builtin[name]; ok {
		return s
	}
	return r.builtin[StyleNormal]
}

// Has reports whether a custom or built-in style with this name exists
func (r *Registry) Has(name string) bool {
	if _, ok := r.custom[name]; ok {
		return true
	}
	_, ok := r.builtin[name]
	return ok
}

// Names returns all registered style names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.custom)+len(r.builtin))
	for n := range r.custom {
		names = append(names, n)
	}
	for n := range r.builtin {
		if _, dup := r.custom[n]; !dup {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the registry
func (r *Registry) Clone() *Registry {
	c := &Registry{
		custom:  make(map[string]StyleSpec, len(r.custom)),
		builtin: make(map[string]StyleSpec, len(r.builtin)),
	}
	for k, v := range r.custom {
		c.custom[k] = v
	}
	for k, v := range r.builtin {
		c.builtin[k] = v
	}
	return c
}

// ApplyTheme overrides the styles a theme names. The theme is validated as a
// whole first; on error the registry is left untouched. Roles the registry
// does not know are ignored.
func (r *Registry) ApplyTheme(theme types.Theme) error {
	overrides, err := r.planTheme(theme)
	if err != nil {
		return err
	}
	for _, s := range overrides {
		r.set(s)
	}
	return nil
}

// planTheme computes the overridden styles without touching the registry
func (r *Registry) planTheme(theme types.Theme) ([]StyleSpec, error) {
	pending := make(map[string]StyleSpec)
	get := func(name string) StyleSpec {
		if s, ok := pending[name]; ok {
			return s
		}
		return r.Resolve(name)
	}

	if theme.TitleColor != "" {
		c, err := ParseHexColor(theme.TitleColor)
		if err != nil {
			return nil, withField(err, "title_color")
		}
		s := get(StyleName)
		s.TextColor = c
		pending[StyleName] = s
	}

	if theme.SectionColor != "" {
		c, err := ParseHexColor(theme.SectionColor)
		if err != nil {
			return nil, withField(err, "section_color")
		}
		s := get(StyleSectionHeader)
		s.TextColor = c
		s.BorderBottomColor = c
		pending[StyleSectionHeader] = s
	}

	for _, role := range sortedKeys(theme.FontStyles) {
		target, ok := themeRoles[role]
		if !ok {
			continue
		}
		fontName := theme.FontStyles[role]
		if _, err := ParseFont(fontName); err != nil {
			return nil, withField(err, "font_styles."+role)
		}
		s := get(target)
		s.FontName = fontName
		pending[target] = s
	}

	for _, role := range sortedKeys(theme.FontSizes) {
		target, ok := themeRoles[role]
		if !ok {
			continue
		}
		size := theme.FontSizes[role]
		if size <= 0 {
			return nil, &InvalidStyleError{
				Field:   "font_sizes." + role,
				Value:   fmt.Sprintf("%g", size),
				Message: "must be positive",
			}
		}
		s := get(target)
		s.FontSize = size
		s.Leading = 0
		pending[target] = s
	}

	out := make([]StyleSpec, 0, len(pending))
	for _, name := range sortedKeys(pending) {
		out = append(out, pending[name])
	}
	return out, nil
}

func (r *Registry) set(s StyleSpec) {
	if _, ok := r.builtin[s.Name]; ok {
		if _, custom := r.custom[s.Name]; !custom {
			r.builtin[s.Name] = s
			return
		}
	}
	r.custom[s.Name] = s
}

func withField(err error, field string) error {
	if ise, ok := err.(*InvalidStyleError); ok {
		return &InvalidStyleError{Field: field, Value: ise.Value, Message: ise.Message, Cause: ise.Cause}
	}
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
