package templates

import "github.com/jonathan/resume-pdf/internal/types"

// DefaultTheme is the theme used when none is requested
const DefaultTheme = "Elegant Gold Theme"

// DefaultTemplate is the template name used when none is requested
const DefaultTemplate = "modern"

// DefaultCatalog returns the built-in theme catalog seeded into new templates
func DefaultCatalog() types.ThemeCatalog {
	return types.ThemeCatalog{
		DefaultTheme: {
			TitleColor:   "#FFD700",
			SectionColor: "#DAA520",
			FontSizes: map[string]float64{
				types.RoleTitle:         24,
				types.RoleSectionHeader: 18,
				types.RoleNormal:        12,
				types.RoleSubtitle:      14,
			},
			FontStyles: map[string]string{
				types.RoleTitle:         "Times-Bold",
				types.RoleSectionHeader: "Times-BoldItalic",
				types.RoleNormal:        "Times-Roman",
				types.RoleSubtitle:      "Times-Italic",
			},
		},
		"Classic Navy Theme": {
			TitleColor:   "#000080",
			SectionColor: "#000080",
			FontSizes: map[string]float64{
				types.RoleTitle:         20,
				types.RoleSectionHeader: 14,
				types.RoleNormal:        10,
			},
			FontStyles: map[string]string{
				types.RoleTitle:         "Helvetica-Bold",
				types.RoleSectionHeader: "Helvetica-Bold",
				types.RoleNormal:        "Helvetica",
			},
		},
		"Monochrome Theme": {
			TitleColor:   "#222222",
			SectionColor: "#555555",
			FontStyles: map[string]string{
				types.RoleTitle:         "Courier-Bold",
				types.RoleSectionHeader: "Courier-Bold",
				types.RoleNormal:        "Courier",
				types.RoleBullet:        "Courier",
			},
		},
	}
}
