package compose

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/jonathan/resume-pdf/internal/types"
)

// maxSkillColumnWidth caps each skills table column at two inches
const maxSkillColumnWidth = 2 * layout.Inch

// minSkillColumnWidth leaves room for the cell padding and a few characters
const minSkillColumnWidth = layout.Inch / 2

func (c *Composer) checkSkillColumns(skills int) error {
	if c.skillsMode != SkillsTable || skills == 0 {
		return nil
	}
	if width := c.engine.ColumnWidth() / float64(c.skillColumns); width < minSkillColumnWidth {
		return &SettingError{
			Setting: "skill_columns",
			Message: fmt.Sprintf("%d columns leave %.1fpt per cell in a %.1fpt frame (minimum %gpt)",
				c.skillColumns, width, c.engine.ColumnWidth(), minSkillColumnWidth),
		}
	}
	return nil
}

// SkillRows lays skills out left to right, then top to bottom, in rows of
// the given width. The last row is padded with empty strings.
func SkillRows(skills []string, columns int) [][]string {
	if columns < 1 || len(skills) == 0 {
		return nil
	}
	n := int(math.Ceil(float64(len(skills)) / float64(columns)))
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, columns)
		for j := range row {
			if k := i*columns + j; k < len(skills) {
				row[j] = skills[k]
			}
		}
		rows[i] = row
	}
	return rows
}

func skillTableRules() []layout.CellRule {
	all := [2]layout.Cell{{Col: 0, Row: 0}, {Col: -1, Row: -1}}
	return []layout.CellRule{
		{Op: layout.OpAlign, From: all[0], To: all[1], Align: styles.AlignCenter},
		{Op: layout.OpFontSize, From: all[0], To: all[1], Size: 10},
	}
}

func (c *Composer) addSkills(r types.ResumeData) error {
	c.sectionHeader(TitleSkills)

	if c.skillsMode == SkillsTable {
		width := math.Min(maxSkillColumnWidth, c.engine.ColumnWidth()/float64(c.skillColumns))
		widths := make([]float64, c.skillColumns)
		for i := range widths {
			widths[i] = width
		}
		if err := c.engine.AddTable(SkillRows(r.Skills, c.skillColumns), widths, skillTableRules()); err != nil {
			return err
		}
		return c.closeSection()
	}

	for _, s := range r.Skills {
		c.engine.AddText(layout.EscapeText(bullet+s), styles.StyleNormal, layout.DefaultSpaceAfter)
	}
	return c.closeSection()
}
