// Package types provides type definitions for structured data used throughout the resume-pdf system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PresentSentinel marks an open-ended date range
const PresentSentinel = "Present"

// DefaultLocation is used when an experience has no location
const DefaultLocation = "Remote"

// DateLayout is the layout of start/end dates in resume records ("Jan 2020")
const DateLayout = "Jan 2006"

// Contact info keys with special rendering
const (
	ContactEmail    = "email"
	ContactPhone    = "phone"
	ContactLinkedIn = "linkedin"
	ContactWebsite  = "website"
)

// ResumeData is the structured record rendered into a resume document
type ResumeData struct {
	Name           string            `json:"name" validate:"required"`
	ContactInfo    map[string]string `json:"contact_info,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []Experience      `json:"experience,omitempty" validate:"dive"`
	Education      []Education       `json:"education,omitempty" validate:"dive"`
	Skills         []string          `json:"skills,omitempty" validate:"dive,required"`
	AdditionalInfo string            `json:"additional_info,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Position     int      `json:"position" validate:"gte=0"`
}

// Education represents a single education entry
type Education struct {
	Degree         string `json:"degree" validate:"required"`
	Field          string `json:"field" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	GraduationDate string `json:"graduation_date,omitempty"`
	Position       int    `json:"position" validate:"gte=0"`
}

// EndDateOrPresent returns the end date, or "Present" when the role is ongoing
func (e Experience) EndDateOrPresent() string {
	if e.EndDate == "" {
		return PresentSentinel
	}
	return e.EndDate
}

// LocationOrDefault returns the location, or "Remote" when none is set
func (e Experience) LocationOrDefault() string {
	if e.Location == "" {
		return DefaultLocation
	}
	return e.Location
}

// GraduationOrPresent returns the graduation date, or "Present" when absent
func (e Education) GraduationOrPresent() string {
	if e.GraduationDate == "" {
		return PresentSentinel
	}
	return e.GraduationDate
}
