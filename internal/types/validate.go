package types

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// graduationLayouts are accepted for graduation dates in addition to DateLayout
var graduationLayouts = []string{DateLayout, "2006"}

// DateError reports a date field that does not match the expected layout
type DateError struct {
	Field string
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s: invalid date %q (expected e.g. \"Jan 2020\" or %q)", e.Field, e.Value, PresentSentinel)
}

// Validate validates the ResumeData using the validator, then checks the date
// fields and that all text can be set in the PDF core fonts
func (r *ResumeData) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := r.checkText(); err != nil {
		return err
	}

	for i, exp := range r.Experience {
		if !validDate(exp.StartDate, DateLayout) || exp.StartDate == PresentSentinel {
			return &DateError{Field: fmt.Sprintf("experience[%d].start_date", i), Value: exp.StartDate}
		}
		if exp.EndDate != "" && !validDate(exp.EndDate, DateLayout) {
			return &DateError{Field: fmt.Sprintf("experience[%d].end_date", i), Value: exp.EndDate}
		}
	}
	for i, edu := range r.Education {
		if edu.GraduationDate != "" && !validDate(edu.GraduationDate, graduationLayouts...) {
			return &DateError{Field: fmt.Sprintf("education[%d].graduation_date", i), Value: edu.GraduationDate}
		}
	}
	return nil
}

func validDate(value string, layouts ...string) bool {
	if value == PresentSentinel {
		return true
	}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// Sorted returns a copy with experience and education ordered by Position.
// Entries with equal positions keep their input order.
func (r ResumeData) Sorted() ResumeData {
	out := r
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = append([]string(nil), r.Skills...)
	if r.ContactInfo != nil {
		out.ContactInfo = make(map[string]string, len(r.ContactInfo))
		for k, v := range r.ContactInfo {
			out.ContactInfo[k] = v
		}
	}

	sort.SliceStable(out.Experience, func(i, j int) bool {
		return out.Experience[i].Position < out.Experience[j].Position
	})
	sort.SliceStable(out.Education, func(i, j int) bool {
		return out.Education[i].Position < out.Education[j].Position
	})
	return out
}

// ContactKeys returns the contact info keys in rendering order: email, phone,
// linkedin, website, then any other key alphabetically. Empty values are skipped.
func (r ResumeData) ContactKeys() []string {
	var keys []string
	known := []string{ContactEmail, ContactPhone, ContactLinkedIn, ContactWebsite}
	for _, k := range known {
		if r.ContactInfo[k] != "" {
			keys = append(keys, k)
		}
	}

	var others []string
	for k, v := range r.ContactInfo {
		if v == "" || isKnownContact(k) {
			continue
		}
		others = append(others, k)
	}
	sort.Strings(others)
	return append(keys, others...)
}

func isKnownContact(key string) bool {
	switch key {
	case ContactEmail, ContactPhone, ContactLinkedIn, ContactWebsite:
		return true
	}
	return false
}
