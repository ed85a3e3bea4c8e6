package odp

import (
	"strconv"
	"strings"
)

// textEscaper replaces in a single pass, so "&" is never re-escaped inside
// an entity produced for "<" or ">".
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes s for use as XML character data.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes s for use inside a double-quoted XML attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// writeParagraph emits one text:p. Whitespace-only lines become an empty
// paragraph. ODF collapses consecutive spaces, so leading spaces and every
// space after the first in a run are written as text:s, and tabs as
// text:tab.
func writeParagraph(b *strings.Builder, style, line string) {
	if strings.TrimSpace(line) == "" {
		b.WriteString(`<text:p text:style-name="` + style + `"/>`)
		return
	}

	b.WriteString(`<text:p text:style-name="` + style + `">`)
	writeSpans(b, line)
	b.WriteString(`</text:p>`)
}

func writeSpans(b *strings.Builder, line string) {
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			b.WriteString(EscapeText(text.String()))
			text.Reset()
		}
	}

	atStart := true
	spaces := 0
	emitSpaces := func() {
		if spaces == 0 {
			return
		}
		n := spaces
		if !atStart {
			text.WriteByte(' ')
			n--
		}
		flush()
		writeSpaceRun(b, n)
		spaces = 0
	}

	for _, r := range line {
		switch r {
		case ' ':
			spaces++
			continue
		case '\t':
			emitSpaces()
			flush()
			b.WriteString(`<text:tab/>`)
		default:
			emitSpaces()
			text.WriteRune(r)
		}
		atStart = false
	}
	emitSpaces()
	flush()
}

func writeSpaceRun(b *strings.Builder, n int) {
	switch {
	case n <= 0:
	case n == 1:
		b.WriteString(`<text:s/>`)
	default:
		b.WriteString(`<text:s text:c="` + strconv.Itoa(n) + `"/>`)
	}
}
