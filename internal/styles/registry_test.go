package styles

import (
	"testing"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SeedsDefaultCatalog(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{
		StyleName, StyleContact, StyleSection, StyleSectionHeader, StyleSubtitle,
		StyleBullet, StyleLink, StyleHighlighted, StyleCentered, StyleJustified, StyleSmallCaps,
	} {
		assert.True(t, r.Has(name), "missing default style %s", name)
	}

	name := r.Resolve(StyleName)
	assert.Equal(t, "Helvetica-Bold", name.FontName)
	assert.Equal(t, 18.0, name.FontSize)
	assert.Equal(t, DarkBlue, name.TextColor)
	assert.Equal(t, AlignCenter, name.Alignment)

	link := r.Resolve(StyleLink)
	assert.True(t, link.Underline)
	assert.Equal(t, Blue, link.TextColor)
}

func TestResolve_FallsBackToBuiltinThenNormal(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, StyleHeading2, r.Resolve(StyleHeading2).Name)

	unknown := r.Resolve("does-not-exist")
	assert.Equal(t, StyleNormal, unknown.Name)
	assert.Equal(t, "Helvetica", unknown.FontName)
}

func TestApplyTheme_TitleColorOnly(t *testing.T) {
	r := NewRegistry()
	before := NewRegistry()

	err := r.ApplyTheme(types.Theme{TitleColor: "#FFD700"})
	require.NoError(t, err)

	name := r.Resolve(StyleName)
	assert.Equal(t, Color{0xFF, 0xD7, 0x00}, name.TextColor)

	expected := before.Resolve(StyleName)
	expected.TextColor = Color{0xFF, 0xD7, 0x00}
	assert.Equal(t, expected, name)

	for _, n := range before.Names() {
		if n == StyleName {
			continue
		}
		assert.Equal(t, before.Resolve(n), r.Resolve(n), "style %s changed", n)
	}
}

func TestApplyTheme_ElegantGold(t *testing.T) {
	r := NewRegistry()
	theme := types.Theme{
		TitleColor:   "#FFD700",
		SectionColor: "#DAA520",
		FontSizes:    map[string]float64{"title": 24, "section_header": 18, "normal": 12, "subtitle": 14},
		FontStyles: map[string]string{
			"title": "Times-Bold", "section_header": "Times-BoldItalic",
			"normal": "Times-Roman", "subtitle": "Times-Italic",
		},
	}

	require.NoError(t, r.ApplyTheme(theme))

	name := r.Resolve(StyleName)
	assert.Equal(t, "Times-Bold", name.FontName)
	assert.Equal(t, 24.0, name.FontSize)
	assert.InDelta(t, 28.8, name.LineHeight(), 0.001)

	header := r.Resolve(StyleSectionHeader)
	assert.Equal(t, MustParseHexColor("#DAA520"), header.TextColor)
	assert.Equal(t, MustParseHexColor("#DAA520"), header.BorderBottomColor)
	assert.Equal(t, "Times-BoldItalic", header.FontName)

	normal := r.Resolve(StyleNormal)
	assert.Equal(t, "Times-Roman", normal.FontName)
	assert.Equal(t, 12.0, normal.FontSize)

	assert.Equal(t, "Times-Italic", r.Resolve(StyleSubtitle).FontName)
}

func TestApplyTheme_UnknownRolesIgnored(t *testing.T) {
	r := NewRegistry()
	before := r.Clone()

	err := r.ApplyTheme(types.Theme{
		FontSizes:  map[string]float64{"sidebar": 40},
		FontStyles: map[string]string{"sidebar": "NotAFont"},
	})
	require.NoError(t, err)

	for _, n := range before.Names() {
		assert.Equal(t, before.Resolve(n), r.Resolve(n))
	}
}

func TestApplyTheme_InvalidColorLeavesRegistryUntouched(t *testing.T) {
	r := NewRegistry()
	before := r.Clone()

	err := r.ApplyTheme(types.Theme{
		FontSizes:    map[string]float64{"title": 30},
		SectionColor: "#GGGGGG",
	})
	require.Error(t, err)

	var styleErr *InvalidStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "section_color", styleErr.Field)
	assert.Equal(t, before.Resolve(StyleName), r.Resolve(StyleName))
}

func TestApplyTheme_InvalidFontAndSize(t *testing.T) {
	r := NewRegistry()

	err := r.ApplyTheme(types.Theme{FontStyles: map[string]string{"title": "Comic Sans"}})
	var styleErr *InvalidStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "font_styles.title", styleErr.Field)

	err = r.ApplyTheme(types.Theme{FontSizes: map[string]float64{"normal": -1}})
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "font_sizes.normal", styleErr.Field)
}

func TestClone_IsIndependent(t *testing.T) {
	shared := NewRegistry()
	doc := shared.Clone()

	require.NoError(t, doc.ApplyTheme(types.Theme{TitleColor: "#112233"}))

	assert.Equal(t, DarkBlue, shared.Resolve(StyleName).TextColor)
	assert.Equal(t, MustParseHexColor("#112233"), doc.Resolve(StyleName).TextColor)
}

func TestResolvedStyleIsASnapshot(t *testing.T) {
	r := NewRegistry()
	captured := r.Resolve(StyleSectionHeader)

	require.NoError(t, r.ApplyTheme(types.Theme{SectionColor: "#DAA520"}))

	assert.Equal(t, Navy, captured.TextColor)
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	err := r.Register(StyleSpec{Name: "sidebar", FontName: "Courier", FontSize: 9})
	require.NoError(t, err)
	assert.Equal(t, "Courier", r.Resolve("sidebar").FontName)

	err = r.Register(StyleSpec{Name: "bad", FontName: "Courier", FontSize: 0})
	assert.Error(t, err)

	err = r.Register(StyleSpec{FontName: "Courier", FontSize: 9})
	assert.Error(t, err)
}

func TestRegisterDefaultStyles_ResetsOverrides(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.ApplyTheme(types.Theme{TitleColor: "#FFFFFF"}))

	r.RegisterDefaultStyles()

	assert.Equal(t, DarkBlue, r.Resolve(StyleName).TextColor)
}
