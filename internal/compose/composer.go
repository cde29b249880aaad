package compose

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/types"
)

// SkillsMode selects how the skills section is rendered
type SkillsMode string

// Skills rendering modes
const (
	SkillsBullets SkillsMode = "bullets"
	SkillsTable   SkillsMode = "table"
)

// DefaultSkillColumns is the column count of the skills table
const DefaultSkillColumns = 3

// Spacing used between composed blocks
const (
	contactSpaceAfter = 5.0
	ruleThickness     = 1.0
	ruleColor         = "#000000"
)

// Composer appends resume sections to a layout engine
type Composer struct {
	engine            *layout.Engine
	showBulletPoints  bool
	skillsMode        SkillsMode
	skillColumns      int
	lineAfterSections bool
	logger            *zap.Logger
}

// Option configures a Composer
type Option func(*Composer)

// WithBulletPoints toggles achievement bullets; when off, descriptions are used
func WithBulletPoints(show bool) Option {
	return func(c *Composer) { c.showBulletPoints = show }
}

// WithSkillsMode selects table or bullet rendering of skills
func WithSkillsMode(mode SkillsMode) Option {
	return func(c *Composer) { c.skillsMode = mode }
}

// WithSkillColumns sets the column count of the skills table
func WithSkillColumns(n int) Option {
	return func(c *Composer) {
		if n > 0 {
			c.skillColumns = n
		}
	}
}

// WithLineAfterSections toggles the rule that closes each section
func WithLineAfterSections(on bool) Option {
	return func(c *Composer) { c.lineAfterSections = on }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a composer writing into engine
func New(engine *layout.Engine, opts ...Option) *Composer {
	c := &Composer{
		engine:            engine,
		showBulletPoints:  true,
		skillsMode:        SkillsBullets,
		skillColumns:      DefaultSkillColumns,
		lineAfterSections: true,
		logger:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose validates the resume and appends its sections in fixed order:
// header, summary, experience, education, skills, additional info. Optional
// sections are skipped when empty.
func (c *Composer) Compose(resume *types.ResumeData) (*Outline, error) {
	if resume == nil {
		return nil, &InvalidResumeError{Message: "resume data is nil"}
	}
	if err := resume.Validate(); err != nil {
		return nil, &InvalidResumeError{Message: "validation failed", Cause: err}
	}
	if c.skillsMode != SkillsBullets && c.skillsMode != SkillsTable {
		return nil, &InvalidResumeError{Message: "unknown skills mode " + string(c.skillsMode)}
	}
	if err := c.checkSkillColumns(len(resume.Skills)); err != nil {
		return nil, err
	}

	data := resume.Sorted()
	outline := &Outline{}

	steps := []struct {
		kind    SectionKind
		title   string
		entries int
		present bool
		add     func(types.ResumeData) error
	}{
		{SectionHeader, "", len(data.ContactKeys()), true, c.addHeader},
		{SectionSummary, TitleSummary, 1, data.Summary != "", c.addSummary},
		{SectionExperience, TitleExperience, len(data.Experience), len(data.Experience) > 0, c.addExperience},
		{SectionEducation, TitleEducation, len(data.Education), len(data.Education) > 0, c.addEducation},
		{SectionSkills, TitleSkills, len(data.Skills), len(data.Skills) > 0, c.addSkills},
		{SectionAdditional, TitleAdditional, 1, data.AdditionalInfo != "", c.addAdditionalInfo},
	}

	for _, step := range steps {
		if !step.present {
			continue
		}
		start := c.engine.Len()
		if err := step.add(data); err != nil {
			return nil, &Error{Section: step.kind, Cause: err}
		}
		outline.Sections = append(outline.Sections, Section{
			Kind:    step.kind,
			Title:   step.title,
			Entries: step.entries,
			Start:   start,
			End:     c.engine.Len(),
		})
		c.logger.Debug("section composed",
			zap.String("section", string(step.kind)),
			zap.Int("elements", c.engine.Len()-start))
	}
	return outline, nil
}

func (c *Composer) rule() error {
	return c.engine.AddHorizontalLine(ruleColor, ruleThickness, 0, layout.DefaultLineSpaceAfter)
}

func (c *Composer) closeSection() error {
	if !c.lineAfterSections {
		return nil
	}
	return c.rule()
}
