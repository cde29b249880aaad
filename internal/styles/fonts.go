package styles

import "sort"

// Font identifies one of the standard PDF core fonts by family and style
// ("", "B", "I" or "BI").
type Font struct {
	Family string
	Style  string
}

var coreFonts = map[string]Font{
	"Helvetica":             {"Helvetica", ""},
	"Helvetica-Bold":        {"Helvetica", "B"},
	"Helvetica-Oblique":     {"Helvetica", "I"},
	"Helvetica-BoldOblique": {"Helvetica", "BI"},
	"Times-Roman":           {"Times", ""},
	"Times-Bold":            {"Times", "B"},
	"Times-Italic":          {"Times", "I"},
	"Times-BoldItalic":      {"Times", "BI"},
	"Courier":               {"Courier", ""},
	"Courier-Bold":          {"Courier", "B"},
	"Courier-Oblique":       {"Courier", "I"},
	"Courier-BoldOblique":   {"Courier", "BI"},
}

// ParseFont maps a core font name such as "Times-BoldItalic" to its family and style
func ParseFont(name string) (Font, error) {
	f, ok := coreFonts[name]
	if !ok {
		return Font{}, &InvalidStyleError{
			Field:   "font",
			Value:   name,
			Message: "not a core PDF font",
		}
	}
	return f, nil
}

// CoreFontNames returns the supported font names, sorted
func CoreFontNames() []string {
	names := make([]string, 0, len(coreFonts))
	for name := range coreFonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
