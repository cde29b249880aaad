package types

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// UnsupportedCharacterError reports text the PDF core fonts cannot encode.
// Core fonts are set in Windows-1252; anything outside it would print as a dot.
type UnsupportedCharacterError struct {
	Field string
	Value string
	Rune  rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("%s: character %q (%U) is not supported by the PDF core fonts (Windows-1252)", e.Field, e.Rune, e.Rune)
}

// checkEncodable returns the first character of value outside Windows-1252
func checkEncodable(field, value string) error {
	for _, r := range value {
		if r < utf8.RuneSelf {
			continue
		}
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return &UnsupportedCharacterError{Field: field, Value: value, Rune: r}
		}
	}
	return nil
}

// checkText verifies every rendered string of the record
func (r *ResumeData) checkText() error {
	type text struct{ field, value string }
	fields := []text{{"name", r.Name}, {"summary", r.Summary}, {"additional_info", r.AdditionalInfo}}
	for _, k := range r.ContactKeys() {
		fields = append(fields, text{"contact_info." + k, r.ContactInfo[k]})
	}
	for i, exp := range r.Experience {
		prefix := fmt.Sprintf("experience[%d].", i)
		fields = append(fields,
			text{prefix + "title", exp.Title},
			text{prefix + "company", exp.Company},
			text{prefix + "location", exp.Location},
			text{prefix + "description", exp.Description})
		for j, a := range exp.Achievements {
			fields = append(fields, text{fmt.Sprintf("%sachievements[%d]", prefix, j), a})
		}
	}
	for i, edu := range r.Education {
		prefix := fmt.Sprintf("education[%d].", i)
		fields = append(fields,
			text{prefix + "degree", edu.Degree},
			text{prefix + "field", edu.Field},
			text{prefix + "institution", edu.Institution})
	}
	for i, s := range r.Skills {
		fields = append(fields, text{fmt.Sprintf("skills[%d]", i), s})
	}

	for _, f := range fields {
		if err := checkEncodable(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}
