package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// markupColors maps '&' color codes to ANSI-256 palette entries.
// The code set follows the classic chat convention: 0-9 and a-f.
var markupColors = map[byte]string{
	'0': "0",  // black
	'1': "4",  // dark blue
	'2': "2",  // dark green
	'3': "6",  // dark aqua
	'4': "1",  // dark red
	'5': "5",  // dark purple
	'6': "3",  // gold
	'7': "7",  // gray
	'8': "8",  // dark gray
	'9': "12", // blue
	'a': "10", // green
	'b': "14", // aqua
	'c': "9",  // red
	'd': "13", // light purple
	'e': "11", // yellow
	'f': "15", // white
}

// RenderMarkup translates '&'-coded chat markup into styled terminal text.
// Color codes (&0-&f) reset active decorations, decoration codes (&l bold,
// &m strikethrough, &n underline, &o italic) accumulate, and &r resets
// everything. An '&' not followed by a valid code is kept literally.
// When styling is disabled the codes are stripped instead.
func RenderMarkup(text string) string {
	if !enabled {
		return StripMarkup(text)
	}

	var (
		out    strings.Builder
		seg    strings.Builder
		cur    lipgloss.Style
		styled bool
	)

	flush := func() {
		if seg.Len() == 0 {
			return
		}
		if styled {
			out.WriteString(cur.Render(seg.String()))
		} else {
			out.WriteString(seg.String())
		}
		seg.Reset()
	}

	for i := 0; i < len(text); i++ {
		if text[i] == '&' && i+1 < len(text) {
			code := lowerByte(text[i+1])

			if ansi, ok := markupColors[code]; ok {
				flush()
				cur = lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
				styled = true
				i++
				continue
			}

			switch code {
			case 'l':
				flush()
				cur = cur.Bold(true)
				styled = true
				i++
				continue
			case 'm':
				flush()
				cur = cur.Strikethrough(true)
				styled = true
				i++
				continue
			case 'n':
				flush()
				cur = cur.Underline(true)
				styled = true
				i++
				continue
			case 'o':
				flush()
				cur = cur.Italic(true)
				styled = true
				i++
				continue
			case 'r':
				flush()
				cur = lipgloss.NewStyle()
				styled = false
				i++
				continue
			}
		}

		seg.WriteByte(text[i])
	}

	flush()
	return out.String()
}

// StripMarkup removes all valid '&' codes from text, leaving plain text.
func StripMarkup(text string) string {
	var out strings.Builder

	for i := 0; i < len(text); i++ {
		if text[i] == '&' && i+1 < len(text) && isMarkupCode(lowerByte(text[i+1])) {
			i++
			continue
		}
		out.WriteByte(text[i])
	}

	return out.String()
}

// isMarkupCode reports whether the (lowercased) byte is a valid markup code.
func isMarkupCode(code byte) bool {
	if _, ok := markupColors[code]; ok {
		return true
	}
	switch code {
	case 'l', 'm', 'n', 'o', 'r':
		return true
	}
	return false
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
