package compose

import (
	"fmt"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jonathan/resume-pdf/internal/types"
)

const bullet = "• "

func (c *Composer) addHeader(r types.ResumeData) error {
	c.engine.AddText(layout.EscapeText(r.Name), styles.StyleName, contactSpaceAfter)
	if err := c.rule(); err != nil {
		return err
	}
	for _, key := range r.ContactKeys() {
		value := r.ContactInfo[key]
		switch key {
		case types.ContactEmail:
			c.engine.AddText(layout.Hyperlink("mailto:"+value, value), styles.StyleLink, contactSpaceAfter)
		case types.ContactLinkedIn, types.ContactWebsite:
			c.engine.AddText(layout.Hyperlink(value, value), styles.StyleLink, contactSpaceAfter)
		default:
			c.engine.AddText(layout.EscapeText(value), styles.StyleNormal, contactSpaceAfter)
		}
	}
	return c.rule()
}

func (c *Composer) sectionHeader(title string) {
	c.engine.AddText(title, styles.StyleSectionHeader, 0)
}

func (c *Composer) addSummary(r types.ResumeData) error {
	c.sectionHeader(TitleSummary)
	c.engine.AddText(layout.EscapeText(r.Summary), styles.StyleNormal, layout.DefaultSpaceAfter)
	return c.closeSection()
}

func (c *Composer) addExperience(r types.ResumeData) error {
	c.sectionHeader(TitleExperience)
	for _, exp := range r.Experience {
		title := fmt.Sprintf("%s at %s", exp.Title, exp.Company)
		c.engine.AddText(layout.EscapeText(title), styles.StyleSubtitle, layout.DefaultSpaceAfter)

		duration := fmt.Sprintf("%s - %s | %s", exp.StartDate, exp.EndDateOrPresent(), exp.LocationOrDefault())
		c.engine.AddText(layout.EscapeText(duration), styles.StyleNormal, layout.DefaultSpaceAfter)

		switch {
		case c.showBulletPoints && len(exp.Achievements) > 0:
			for _, a := range exp.Achievements {
				c.engine.AddText(layout.EscapeText(bullet+a), styles.StyleBullet, layout.DefaultSpaceAfter)
			}
		case exp.Description != "":
			c.engine.AddText(layout.EscapeText(exp.Description), styles.StyleNormal, layout.DefaultSpaceAfter)
		}
	}
	return c.closeSection()
}

func (c *Composer) addEducation(r types.ResumeData) error {
	c.sectionHeader(TitleEducation)
	for _, edu := range r.Education {
		degree := fmt.Sprintf("%s in %s", edu.Degree, edu.Field)
		c.engine.AddText(layout.EscapeText(degree), styles.StyleSubtitle, layout.DefaultSpaceAfter)

		inst := fmt.Sprintf("%s | Graduated: %s", edu.Institution, edu.GraduationOrPresent())
		c.engine.AddText(layout.EscapeText(inst), styles.StyleNormal, layout.DefaultSpaceAfter)
	}
	return c.closeSection()
}

func (c *Composer) addAdditionalInfo(r types.ResumeData) error {
	c.sectionHeader(TitleAdditional)
	c.engine.AddText(layout.EscapeText(r.AdditionalInfo), styles.StyleNormal, layout.DefaultSpaceAfter)
	return c.closeSection()
}
