package compose

// SectionKind identifies a resume section
type SectionKind string

// Section kinds, in composition order
const (
	SectionHeader     SectionKind = "header"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionAdditional SectionKind = "additional_info"
)

// Section titles
const (
	TitleSummary    = "Professional Summary"
	TitleExperience = "Professional Experience"
	TitleEducation  = "Education"
	TitleSkills     = "Skills"
	TitleAdditional = "Additional Information"
)

// Section describes one composed section. Start and End delimit its
// elements in the engine stream as [Start, End).
type Section struct {
	Kind    SectionKind
	Title   string
	Entries int // experiences, education entries or skills
	Start   int
	End     int
}

// Len returns the number of elements in the section
func (s Section) Len() int {
	return s.End - s.Start
}

// Outline lists the composed sections in order
type Outline struct {
	Sections []Section
}

// Kinds returns the section kinds in order
func (o *Outline) Kinds() []SectionKind {
	kinds := make([]SectionKind, len(o.Sections))
	for i, s := range o.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}

// Section returns the first section of the given kind
func (o *Outline) Section(kind SectionKind) (Section, bool) {
	for _, s := range o.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Count returns how many sections of the given kind exist
func (o *Outline) Count(kind SectionKind) int {
	n := 0
	for _, s := range o.Sections {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
