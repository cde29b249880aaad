package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTexts = []string{
	"Led migration of a monolithic billing system to event-driven services, cutting settlement latency by 40%.",
	"Go, PostgreSQL, Redis, Kafka, Kubernetes, Terraform",
	"Supercalifragilisticexpialidocious antidisestablishmentarianism pneumonoultramicroscopicsilicovolcanoconiosis",
	"short",
	"• Mentored four engineers and introduced structured design reviews across the platform group",
}

func normalStyle(align styles.Alignment) styles.StyleSpec {
	s := styles.NewRegistry().Resolve(styles.StyleNormal)
	s.Alignment = align
	return s
}

func TestWrap_LinesNeverExceedWidth(t *testing.T) {
	m := rendering.NewMetrics()
	aligns := []styles.Alignment{styles.AlignLeft, styles.AlignCenter, styles.AlignRight, styles.AlignJustify}

	for width := 20.0; width <= 540; width += 17 {
		for _, align := range aligns {
			for _, text := range sampleTexts {
				block := TextBlock{Runs: []Run{{Text: text}}, Style: normalStyle(align)}
				lines, err := Wrap(block, width, m)
				require.NoError(t, err)
				require.NotEmpty(t, lines)

				for _, line := range lines {
					assert.LessOrEqual(t, line.Width, width+epsilon, "width %g text %q", width, line.Text())
					measured := m.Width(block.Style.Font(), block.Style.FontSize, line.Text())
					if align != styles.AlignJustify {
						assert.LessOrEqual(t, measured, width+epsilon)
					}
					for _, seg := range line.Segments {
						assert.LessOrEqual(t, seg.Offset+seg.Width, width+epsilon)
					}
				}
			}
		}
	}
}

func TestWrap_KeepsAllWords(t *testing.T) {
	m := rendering.NewMetrics()
	text := sampleTexts[0]
	lines, err := Wrap(TextBlock{Runs: []Run{{Text: text}}, Style: normalStyle(styles.AlignLeft)}, 120, m)
	require.NoError(t, err)
	require.Greater(t, len(lines), 1)

	var parts []string
	for _, l := range lines {
		parts = append(parts, l.Text())
	}
	assert.Equal(t, text, strings.Join(parts, " "))
}

func TestWrap_SplitsOverlongWord(t *testing.T) {
	m := rendering.NewMetrics()
	word := "pneumonoultramicroscopicsilicovolcanoconiosis"
	lines, err := Wrap(TextBlock{Runs: []Run{{Text: word}}, Style: normalStyle(styles.AlignLeft)}, 40, m)
	require.NoError(t, err)
	require.Greater(t, len(lines), 1)

	var joined strings.Builder
	for _, l := range lines {
		joined.WriteString(l.Text())
	}
	assert.Equal(t, word, joined.String())
}

func TestWrap_CharacterWiderThanWidthOverflows(t *testing.T) {
	m := rendering.NewMetrics()
	_, err := Wrap(TextBlock{Runs: []Run{{Text: "W"}}, Style: normalStyle(styles.AlignLeft)}, 1, m)

	var overflow *LayoutOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, string(KindText), overflow.Kind)
}

func TestWrap_HardBreaks(t *testing.T) {
	m := rendering.NewMetrics()
	lines, err := Wrap(TextBlock{Runs: []Run{{Text: "first\nsecond"}}, Style: normalStyle(styles.AlignLeft)}, 500, m)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Text())
	assert.Equal(t, "second", lines[1].Text())
}

func TestWrap_JustifyFillsAllButLastLine(t *testing.T) {
	m := rendering.NewMetrics()
	width := 150.0
	lines, err := Wrap(TextBlock{Runs: []Run{{Text: sampleTexts[0]}}, Style: normalStyle(styles.AlignJustify)}, width, m)
	require.NoError(t, err)
	require.Greater(t, len(lines), 2)

	for _, l := range lines[:len(lines)-1] {
		if len(l.Segments) < 2 {
			continue
		}
		last := l.Segments[len(l.Segments)-1]
		assert.InDelta(t, width, last.Offset+last.Width, 0.001)
	}
	final := lines[len(lines)-1]
	end := final.Segments[len(final.Segments)-1]
	assert.Less(t, end.Offset+end.Width, width)
}

func TestWrap_LinkedRunsKeepHref(t *testing.T) {
	m := rendering.NewMetrics()
	runs := ParseMarkup("Email: " + Hyperlink("mailto:jane@example.com", "jane@example.com"))
	lines, err := Wrap(TextBlock{Runs: runs, Style: normalStyle(styles.AlignLeft)}, 500, m)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	var linked []Segment
	for _, s := range lines[0].Segments {
		if s.Href != "" {
			linked = append(linked, s)
		}
	}
	require.Len(t, linked, 1)
	assert.Equal(t, "jane@example.com", linked[0].Text)
	assert.Equal(t, "mailto:jane@example.com", linked[0].Href)
	assert.Equal(t, "Email: jane@example.com", lines[0].Text())
}

func TestWrap_UppercaseStyle(t *testing.T) {
	m := rendering.NewMetrics()
	style := normalStyle(styles.AlignLeft)
	style.Uppercase = true
	lines, err := Wrap(TextBlock{Runs: []Run{{Text: "small caps"}}, Style: style}, 500, m)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "SMALL CAPS", lines[0].Text())
}
