package odp

import (
	"strings"
	"testing"
)

func TestBuildContent_RoundTrip(t *testing.T) {
	pages := []Page{
		{Title: "A & B", Body: []string{"x", "", "y"}},
		{Title: "Second", Body: []string{"line1"}},
	}

	content := string(BuildContent(pages))

	if !strings.Contains(content, "A &amp; B") {
		t.Fatal("content.xml missing escaped title")
	}
	if strings.Contains(content, "A & B") {
		t.Fatal("content.xml contains unescaped ampersand")
	}
	if got := strings.Count(content, "<draw:page "); got != 2 {
		t.Fatalf("draw:page count = %d, want 2", got)
	}
	if got := strings.Count(content, "draw:image"); got != 0 {
		t.Fatalf("draw:image count = %d, want 0", got)
	}

	slides, err := ParseOutline([]byte(content))
	if err != nil {
		t.Fatalf("ParseOutline() error = %v", err)
	}
	if len(slides) != 2 {
		t.Fatalf("len(slides) = %d, want 2", len(slides))
	}

	a := slides[0]
	if a.Name != "slide1" || a.Title != "A & B" {
		t.Fatalf("slide A = %+v", a)
	}
	if len(a.Paragraphs) != 3 || a.Paragraphs[0] != "x" || a.Paragraphs[1] != "" || a.Paragraphs[2] != "y" {
		t.Fatalf("slide A paragraphs = %q, want [x \"\" y]", a.Paragraphs)
	}

	b := slides[1]
	if b.Title != "Second" || len(b.Paragraphs) != 1 || b.Paragraphs[0] != "line1" {
		t.Fatalf("slide B = %+v", b)
	}
	if len(b.Images) != 0 {
		t.Fatalf("slide B images = %q, want none", b.Images)
	}
}

func TestBuildContent_ParagraphCountMatchesBody(t *testing.T) {
	bodies := [][]string{
		nil,
		{""},
		{"", "", "Thank you!", "", ""},
		{"a", "   - b", "Technology     | Bandwidth"},
	}

	for _, body := range bodies {
		slides, err := ParseOutline(BuildContent([]Page{{Title: "T", Body: body}}))
		if err != nil {
			t.Fatalf("ParseOutline() error = %v", err)
		}
		if got := len(slides[0].Paragraphs); got != len(body) {
			t.Fatalf("paragraphs = %d, want %d for %q", got, len(body), body)
		}
		for i, line := range body {
			if strings.TrimSpace(line) == "" {
				line = ""
			}
			if slides[0].Paragraphs[i] != line {
				t.Fatalf("paragraph %d = %q, want %q", i, slides[0].Paragraphs[i], line)
			}
		}
	}
}

func TestBuildContent_ReservedCharacters(t *testing.T) {
	content := string(BuildContent([]Page{{
		Title: "<script> & co",
		Body:  []string{"1 < 2 > 0 & more"},
	}}))

	for _, want := range []string{"&lt;script&gt; &amp; co", "1 &lt; 2 &gt; 0 &amp; more"} {
		if !strings.Contains(content, want) {
			t.Errorf("content.xml missing %q", want)
		}
	}
	if strings.Contains(content, "<script>") {
		t.Error("content.xml contains raw markup from text")
	}
}

func TestBuildContent_WithImage(t *testing.T) {
	frame := &ImageFrame{Href: "Pictures/chart.png", Rect: FitImage(ImageBox, 1200, 600)}
	content := string(BuildContent([]Page{
		{Title: "Chart", Body: []string{"left"}, Image: frame},
		{Title: "Plain", Body: []string{"full width"}},
	}))

	if got := strings.Count(content, `xlink:href="Pictures/chart.png"`); got != 1 {
		t.Fatalf("image reference count = %d, want 1", got)
	}
	// Narrow body next to the image, full width elsewhere.
	if !strings.Contains(content, `svg:width="11cm" svg:height="10cm" svg:x="2cm" svg:y="5.5cm" presentation:class="outline"`) {
		t.Fatal("image slide body frame is not narrowed")
	}
	if !strings.Contains(content, `svg:width="24cm" svg:height="14cm" svg:x="2cm" svg:y="5.5cm" presentation:class="outline"`) {
		t.Fatal("text-only slide body frame is not full width")
	}
	if !strings.Contains(content, `svg:width="12cm" svg:height="6cm" svg:x="14cm" svg:y="7.5cm"`) {
		t.Fatal("image frame geometry not aspect-fitted")
	}

	slides, err := ParseOutline([]byte(content))
	if err != nil {
		t.Fatalf("ParseOutline() error = %v", err)
	}
	if len(slides[0].Images) != 1 || slides[0].Images[0] != "Pictures/chart.png" {
		t.Fatalf("slide images = %q", slides[0].Images)
	}
	if len(slides[1].Images) != 0 {
		t.Fatalf("plain slide images = %q", slides[1].Images)
	}
}

func TestParseOutline_InvalidXML(t *testing.T) {
	if _, err := ParseOutline([]byte("<draw:page draw:name=slide1></draw:page>")); err == nil {
		t.Fatal("expected error for unquoted attribute")
	}
}

func TestBuildManifest(t *testing.T) {
	manifest := string(BuildManifest([]Picture{
		{Name: "a.png", MediaType: "image/png"},
		{Name: "b.png", MediaType: "image/png"},
	}))

	for _, path := range []string{"content.xml", "styles.xml", "meta.xml", "settings.xml", "Pictures/a.png", "Pictures/b.png"} {
		entry := `manifest:full-path="` + path + `"`
		if got := strings.Count(manifest, entry); got != 1 {
			t.Errorf("manifest entries for %s = %d, want 1", path, got)
		}
	}
	if !strings.Contains(manifest, `manifest:full-path="Pictures/a.png" manifest:media-type="image/png"`) {
		t.Error("picture entry missing image/png media type")
	}
	if strings.Index(manifest, "Pictures/a.png") > strings.Index(manifest, "Pictures/b.png") {
		t.Error("picture entries out of order")
	}
}
