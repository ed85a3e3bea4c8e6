package odp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SlideOutline summarizes one draw:page.
type SlideOutline struct {
	Name       string
	Title      string
	Paragraphs []string
	Images     []string
}

// ParseOutline extracts slide titles, body paragraphs and image references
// from a content.xml document.
func ParseOutline(content []byte) ([]SlideOutline, error) {
	normalized, err := expandEmptyElements(content)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(normalized))
	if err != nil {
		return nil, fmt.Errorf("failed to load content.xml: %w", err)
	}

	var slides []SlideOutline
	elements(doc.Selection, "draw:page").Each(func(_ int, page *goquery.Selection) {
		out := SlideOutline{Name: page.AttrOr("draw:name", "")}

		elements(page, "draw:frame").Each(func(_ int, frame *goquery.Selection) {
			switch frame.AttrOr("presentation:class", "") {
			case "title":
				if p := elements(frame, "text:p").First(); p.Length() > 0 {
					out.Title = paragraphText(p)
				}
			case "outline", "subtitle":
				elements(frame, "text:p").Each(func(_ int, p *goquery.Selection) {
					out.Paragraphs = append(out.Paragraphs, paragraphText(p))
				})
			}
			elements(frame, "draw:image").Each(func(_ int, img *goquery.Selection) {
				out.Images = append(out.Images, img.AttrOr("xlink:href", ""))
			})
		})

		slides = append(slides, out)
	})

	return slides, nil
}

// elements selects descendants by qualified tag name. Prefixed names cannot
// be used directly in a CSS selector.
func elements(s *goquery.Selection, name string) *goquery.Selection {
	return s.Find("*").FilterFunction(func(_ int, e *goquery.Selection) bool {
		return goquery.NodeName(e) == name
	})
}

// paragraphText flattens a text:p, turning text:s and text:tab back into
// the whitespace they encode.
func paragraphText(p *goquery.Selection) string {
	var b strings.Builder
	p.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			b.WriteString(c.Text())
		case "text:s":
			n, err := strconv.Atoi(c.AttrOr("text:c", "1"))
			if err != nil || n < 1 {
				n = 1
			}
			b.WriteString(strings.Repeat(" ", n))
		case "text:tab":
			b.WriteByte('\t')
		case "text:line-break":
			b.WriteByte('\n')
		default:
			b.WriteString(paragraphText(c))
		}
	})
	return b.String()
}

// expandEmptyElements rewrites content.xml so every element has an explicit
// end tag. The HTML parser behind goquery ignores "/>" on unknown elements,
// which would otherwise nest each empty paragraph around its siblings.
func expandEmptyElements(data []byte) ([]byte, error) {
	d := xml.NewDecoder(bytes.NewReader(data))
	var buf bytes.Buffer
	buf.Grow(len(data))

	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse content.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			buf.WriteString("<" + qualifiedName(t.Name))
			for _, a := range t.Attr {
				buf.WriteString(" " + qualifiedName(a.Name) + `="` + EscapeAttr(a.Value) + `"`)
			}
			buf.WriteByte('>')
		case xml.EndElement:
			buf.WriteString("</" + qualifiedName(t.Name) + ">")
		case xml.CharData:
			buf.WriteString(EscapeText(string(t)))
		}
	}

	return buf.Bytes(), nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
