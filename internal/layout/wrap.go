package layout

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-pdf/internal/styles"
)

// epsilon absorbs floating point noise in width and height comparisons
const epsilon = 1e-6

// Measurer returns the advance width of a string in points
type Measurer interface {
	Width(font styles.Font, size float64, s string) float64
}

type piece struct {
	text string
	href string
}

type word struct {
	pieces    []piece
	hardBreak bool
}

func (w word) text() string {
	if len(w.pieces) == 1 {
		return w.pieces[0].text
	}
	var sb strings.Builder
	for _, p := range w.pieces {
		sb.WriteString(p.text)
	}
	return sb.String()
}

// Segment is a horizontally positioned piece of a line
type Segment struct {
	Text   string
	Href   string
	Offset float64 // from the start of the line
	Width  float64
}

// Line is one wrapped line of a text block
type Line struct {
	Segments []Segment
	Width    float64 // natural width before alignment
}

// Text returns the line's visible text
func (l Line) Text() string {
	var sb strings.Builder
	for i, s := range l.Segments {
		if i > 0 {
			prev := l.Segments[i-1]
			if s.Offset > prev.Offset+prev.Width+epsilon {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// tokenize splits runs into words, keeping link attribution per piece.
// Newlines become hard breaks.
func tokenize(runs []Run, uppercase bool) []word {
	var words []word
	var cur word
	var buf strings.Builder
	href := ""

	flushPiece := func() {
		if buf.Len() > 0 {
			cur.pieces = append(cur.pieces, piece{text: buf.String(), href: href})
			buf.Reset()
		}
	}
	flushWord := func() {
		flushPiece()
		if len(cur.pieces) > 0 {
			words = append(words, cur)
		}
		cur = word{}
	}

	for _, r := range runs {
		flushPiece()
		href = r.Href
		text := r.Text
		if uppercase {
			text = strings.ToUpper(text)
		}
		for _, ch := range text {
			switch {
			case ch == '\n':
				flushWord()
				words = append(words, word{hardBreak: true})
			case unicode.IsSpace(ch):
				flushWord()
			default:
				buf.WriteRune(ch)
			}
		}
	}
	flushWord()
	return words
}

type wrapper struct {
	m     Measurer
	font  styles.Font
	size  float64
	space float64
}

func newWrapper(m Measurer, style styles.StyleSpec) *wrapper {
	font := style.Font()
	return &wrapper{m: m, font: font, size: style.FontSize, space: m.Width(font, style.FontSize, " ")}
}

func (w *wrapper) wordWidth(wd word) float64 {
	return w.m.Width(w.font, w.size, wd.text())
}

// nextLine takes as many words as fit in width. A word wider than width is
// split by characters. endsParagraph is true when the line ends the block or
// a hard break.
func (w *wrapper) nextLine(words []word, width float64) (line []word, rest []word, endsParagraph bool, ok bool) {
	total := 0.0
	for i, wd := range words {
		if wd.hardBreak {
			return line, words[i+1:], true, true
		}
		ww := w.wordWidth(wd)
		need := ww
		if len(line) > 0 {
			need += w.space
		}
		if total+need <= width+epsilon {
			line = append(line, wd)
			total += need
			continue
		}
		if len(line) > 0 {
			return line, words[i:], false, true
		}
		head, tail, fits := w.splitWord(wd, width)
		if !fits {
			return nil, words, false, false
		}
		rest = append([]word{tail}, words[i+1:]...)
		return []word{head}, rest, false, true
	}
	return line, nil, true, true
}

// splitWord cuts the longest prefix of wd that fits in width
func (w *wrapper) splitWord(wd word, width float64) (head, tail word, ok bool) {
	var taken []piece
	used := 0.0
	for pi, p := range wd.pieces {
		runes := []rune(p.text)
		for ri := range runes {
			cw := w.m.Width(w.font, w.size, string(runes[ri]))
			if used+cw > width+epsilon {
				if ri > 0 {
					taken = append(taken, piece{text: string(runes[:ri]), href: p.href})
				}
				if len(taken) == 0 {
					return word{}, word{}, false
				}
				remainder := []piece{{text: string(runes[ri:]), href: p.href}}
				remainder = append(remainder, wd.pieces[pi+1:]...)
				return word{pieces: taken}, word{pieces: remainder}, true
			}
			used += cw
		}
		taken = append(taken, p)
	}
	return word{pieces: taken}, word{}, true
}

// build positions the words of a line according to alignment
func (w *wrapper) build(words []word, width float64, align styles.Alignment, endsParagraph bool) Line {
	type cell struct {
		wd    word
		width float64
	}
	cells := make([]cell, len(words))
	natural := 0.0
	for i, wd := range words {
		cells[i] = cell{wd: wd, width: w.wordWidth(wd)}
		natural += cells[i].width
		if i > 0 {
			natural += w.space
		}
	}

	gap := w.space
	start := 0.0
	switch align {
	case styles.AlignCenter:
		start = (width - natural) / 2
	case styles.AlignRight:
		start = width - natural
	case styles.AlignJustify:
		if !endsParagraph && len(words) > 1 {
			gap += (width - natural) / float64(len(words)-1)
		}
	}
	if start < 0 {
		start = 0
	}

	line := Line{Width: natural}
	x := start
	for i, c := range cells {
		if i > 0 {
			x += gap
		}
		px := x
		for _, p := range c.wd.pieces {
			pw := w.m.Width(w.font, w.size, p.text)
			line.Segments = appendSegment(line.Segments, Segment{Text: p.text, Href: p.href, Offset: px, Width: pw}, w.space, i > 0 && px == x)
			px += pw
		}
		x += c.width
	}
	return line
}

// appendSegment merges a piece into the previous segment when they share a
// link and sit one regular space apart, so underlines and link areas span
// whole phrases.
func appendSegment(segs []Segment, s Segment, space float64, afterSpace bool) []Segment {
	if n := len(segs); n > 0 {
		prev := &segs[n-1]
		end := prev.Offset + prev.Width
		if prev.Href == s.Href {
			switch {
			case !afterSpace && abs(end-s.Offset) < epsilon:
				prev.Text += s.Text
				prev.Width += s.Width
				return segs
			case afterSpace && abs(end+space-s.Offset) < epsilon:
				prev.Text += " " + s.Text
				prev.Width += space + s.Width
				return segs
			}
		}
	}
	return append(segs, s)
}

// Wrap breaks a text block into lines no wider than width
func Wrap(block TextBlock, width float64, m Measurer) ([]Line, error) {
	w := newWrapper(m, block.Style)
	words := tokenize(block.Runs, block.Style.Uppercase)
	var lines []Line
	for len(words) > 0 {
		lw, rest, ends, ok := w.nextLine(words, width)
		if !ok {
			return nil, &LayoutOverflowError{Kind: string(KindText), Message: "a single character is wider than the column"}
		}
		lines = append(lines, w.build(lw, width, block.Style.Alignment, ends))
		words = rest
	}
	return lines, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
