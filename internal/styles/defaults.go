package styles

// Style names of the default custom catalog
const (
	StyleName          = "name"
	StyleContact       = "contact"
	StyleSection       = "section"
	StyleSectionHeader = "section_header"
	StyleTitle         = "title"
	StyleSubtitle      = "subtitle"
	StyleJobTitle      = "job_title"
	StyleSubTextGray   = "sub_text_gray"
	StyleHighlighted   = "highlighted"
	StyleBullet        = "bullet"
	StyleCentered      = "centered"
	StyleJustified     = "justified"
	StyleSmallCaps     = "small_caps"
	StyleLink          = "link"
)

// Built-in base style names
const (
	StyleNormal    = "Normal"
	StyleBodyText  = "BodyText"
	StyleTitleBase = "Title"
	StyleHeading1  = "Heading1"
	StyleHeading2  = "Heading2"
	StyleHeading3  = "Heading3"
)

func builtinStyles() map[string]StyleSpec {
	normal := StyleSpec{
		Name:      StyleNormal,
		FontName:  "Helvetica",
		FontSize:  10,
		Leading:   12,
		TextColor: Black,
	}

	body := normal
	body.Name = StyleBodyText
	body.SpaceBefore = 6

	title := normal
	title.Name = StyleTitleBase
	title.FontName = "Helvetica-Bold"
	title.FontSize = 18
	title.Leading = 22
	title.Alignment = AlignCenter
	title.SpaceAfter = 6

	h1 := title
	h1.Name = StyleHeading1
	h1.Alignment = AlignLeft

	h2 := normal
	h2.Name = StyleHeading2
	h2.FontName = "Helvetica-Bold"
	h2.FontSize = 14
	h2.Leading = 18
	h2.SpaceBefore = 12
	h2.SpaceAfter = 6

	h3 := h2
	h3.Name = StyleHeading3
	h3.FontName = "Helvetica-BoldOblique"
	h3.FontSize = 12
	h3.Leading = 14

	return map[string]StyleSpec{
		StyleNormal:    normal,
		StyleBodyText:  body,
		StyleTitleBase: title,
		StyleHeading1:  h1,
		StyleHeading2:  h2,
		StyleHeading3:  h3,
	}
}

// defaultCustomStyles mirrors the custom catalog every resume document starts
// from. Leading 0 means 1.2 x font size.
func defaultCustomStyles() map[string]StyleSpec {
	return map[string]StyleSpec{
		StyleName: {
			Name: StyleName, FontName: "Helvetica-Bold", FontSize: 18, Leading: 22,
			TextColor: DarkBlue, Alignment: AlignCenter, SpaceAfter: 6,
		},
		StyleContact: {
			Name: StyleContact, FontName: "Helvetica", FontSize: 10,
			TextColor: DarkGray, Alignment: AlignLeft,
		},
		StyleSection: {
			Name: StyleSection, FontName: "Helvetica-BoldOblique", FontSize: 12, Leading: 14,
			TextColor: DarkBlue, SpaceBefore: 12, SpaceAfter: 6,
			BorderBottomWidth: 1, BorderBottomColor: DarkBlue,
		},
		StyleTitle: {
			Name: StyleTitle, FontName: "Helvetica-Bold", FontSize: 24, Leading: 28,
			TextColor: DarkBlue, Alignment: AlignCenter, SpaceAfter: 12,
		},
		StyleSubtitle: {
			Name: StyleSubtitle, FontName: "Helvetica", FontSize: 12,
			TextColor: DarkGreen, SpaceAfter: 3,
		},
		StyleJobTitle: {
			Name: StyleJobTitle, FontName: "Helvetica", FontSize: 12,
			TextColor: DarkGreen, SpaceAfter: 3,
		},
		StyleSectionHeader: {
			Name: StyleSectionHeader, FontName: "Helvetica-Bold", FontSize: 14,
			TextColor: Navy, Underline: true, SpaceBefore: 12, SpaceAfter: 6,
		},
		StyleSubTextGray: {
			Name: StyleSubTextGray, FontName: "Helvetica", FontSize: 10, Leading: 12,
			TextColor: Gray, SpaceAfter: 4,
		},
		StyleHighlighted: {
			Name: StyleHighlighted, FontName: "Helvetica", FontSize: 12,
			TextColor: Red, Background: Yellow, HasBackground: true, SpaceAfter: 6,
		},
		StyleBullet: {
			Name: StyleBullet, FontName: "Helvetica", FontSize: 12, TextColor: Black,
			LeftIndent: 20, SpaceBefore: 2, SpaceAfter: 2,
		},
		StyleCentered: {
			Name: StyleCentered, FontName: "Helvetica", FontSize: 12, TextColor: Black,
			Alignment: AlignCenter,
		},
		StyleJustified: {
			Name: StyleJustified, FontName: "Helvetica", FontSize: 12, TextColor: Black,
			Alignment: AlignJustify,
		},
		StyleSmallCaps: {
			Name: StyleSmallCaps, FontName: "Helvetica", FontSize: 10, TextColor: Black,
			SpaceAfter: 4, Uppercase: true,
		},
		StyleLink: {
			Name: StyleLink, FontName: "Helvetica", FontSize: 10, TextColor: Blue,
			Underline: true,
		},
	}
}

// themeRoles maps theme roles to the style they override
var themeRoles = map[string]string{
	"title":          StyleName,
	"section_header": StyleSectionHeader,
	"section":        StyleSection,
	"normal":         StyleNormal,
	"subtitle":       StyleSubtitle,
	"contact":        StyleContact,
	"link":           StyleLink,
	"bullet":         StyleBullet,
	"job_title":      StyleJobTitle,
}
