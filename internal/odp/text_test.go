package odp

import (
	"strings"
	"testing"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"A & B", "A &amp; B"},
		{"a<b>c", "a&lt;b&gt;c"},
		{"&lt;", "&amp;lt;"},
		{`"quoted" 'single'`, `"quoted" 'single'`},
		{"✓ 5mm × 5mm", "✓ 5mm × 5mm"},
	}

	for _, tt := range tests {
		if got := EscapeText(tt.in); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	got := EscapeAttr(`a&b "c" 'd' <e>`)
	want := "a&amp;b &quot;c&quot; &apos;d&apos; &lt;e&gt;"
	if got != want {
		t.Fatalf("EscapeAttr() = %q, want %q", got, want)
	}
}

func TestWriteParagraph(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"empty", "", `<text:p text:style-name="Content"/>`},
		{"whitespace only", "   ", `<text:p text:style-name="Content"/>`},
		{"plain", "hello", `<text:p text:style-name="Content">hello</text:p>`},
		{"escaped", "a < b & c", `<text:p text:style-name="Content">a &lt; b &amp; c</text:p>`},
		{"leading spaces", "   - item", `<text:p text:style-name="Content"><text:s text:c="3"/>- item</text:p>`},
		{"single leading space", " x", `<text:p text:style-name="Content"><text:s/>x</text:p>`},
		{"inner run", "a  b", `<text:p text:style-name="Content">a <text:s/>b</text:p>`},
		{"tab", "a\tb", `<text:p text:style-name="Content">a<text:tab/>b</text:p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			writeParagraph(&b, "Content", tt.line)
			if got := b.String(); got != tt.want {
				t.Fatalf("writeParagraph(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
