package types

// Theme roles understood by the style registry
const (
	RoleTitle         = "title"
	RoleSectionHeader = "section_header"
	RoleSection       = "section"
	RoleNormal        = "normal"
	RoleSubtitle      = "subtitle"
	RoleContact       = "contact"
	RoleLink          = "link"
	RoleBullet        = "bullet"
	RoleJobTitle      = "job_title"
)

// Theme is a named bundle of style overrides applied atop the default styles.
// Zero values mean "leave the default untouched".
type Theme struct {
	Name         string             `json:"-"`
	TitleColor   string             `json:"title_color,omitempty"`
	SectionColor string             `json:"section_color,omitempty"`
	FontSizes    map[string]float64 `json:"font_sizes,omitempty"`
	FontStyles   map[string]string  `json:"font_styles,omitempty"`
}

// ThemeCatalog maps theme names to themes, as stored in a template's style JSON
type ThemeCatalog map[string]Theme

// Lookup returns the named theme with its Name populated
func (c ThemeCatalog) Lookup(name string) (Theme, bool) {
	theme, ok := c[name]
	if !ok {
		return Theme{}, false
	}
	theme.Name = name
	return theme, true
}
