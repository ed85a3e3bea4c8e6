package odp

import (
	"strconv"
	"strings"
)

const contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
    xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
    xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
    xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
    xmlns:presentation="urn:oasis:names:tc:opendocument:xmlns:presentation:1.0"
    xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
    xmlns:xlink="http://www.w3.org/1999/xlink"
    xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" office:version="1.2">
 <office:automatic-styles>
  <style:style style:name="dp1" style:family="drawing-page"/>
  <style:style style:name="gr1" style:family="graphic">
   <style:graphic-properties draw:stroke="none" draw:fill="none"/>
  </style:style>
  <style:style style:name="pr1" style:family="presentation"/>
  <style:style style:name="pr2" style:family="presentation"/>
 </office:automatic-styles>
 <office:body>
  <office:presentation>`

const contentFooter = `
  </office:presentation>
 </office:body>
</office:document-content>
`

// BuildContent renders content.xml with one draw:page per page, in order.
func BuildContent(pages []Page) []byte {
	var b strings.Builder
	b.WriteString(contentHeader)
	for i, p := range pages {
		writePage(&b, i+1, p)
	}
	b.WriteString(contentFooter)
	return []byte(b.String())
}

func writePage(b *strings.Builder, num int, p Page) {
	b.WriteString("\n   " + `<draw:page draw:name="slide` + strconv.Itoa(num) +
		`" draw:master-page-name="Default" draw:style-name="dp1">`)

	b.WriteString("\n    ")
	writeFrameStart(b, TitleRect, `presentation:style-name="pr1" draw:layer="layout"`, "title")
	b.WriteString("\n     <draw:text-box>\n      ")
	writeParagraph(b, "Title", p.Title)
	b.WriteString("\n     </draw:text-box>\n    </draw:frame>")

	body := BodyRect
	if p.Image != nil {
		body = NarrowBodyRect
	}
	b.WriteString("\n    ")
	writeFrameStart(b, body, `presentation:style-name="pr2" draw:layer="layout"`, "outline")
	b.WriteString("\n     <draw:text-box>")
	for _, line := range p.Body {
		b.WriteString("\n      ")
		writeParagraph(b, "Content", line)
	}
	b.WriteString("\n     </draw:text-box>\n    </draw:frame>")

	if p.Image != nil {
		b.WriteString("\n    ")
		writeFrameStart(b, p.Image.Rect, `draw:style-name="gr1" draw:layer="layout"`, "")
		b.WriteString("\n     " + `<draw:image xlink:href="` + EscapeAttr(p.Image.Href) +
			`" xlink:type="simple" xlink:show="embed" xlink:actuate="onLoad"/>`)
		b.WriteString("\n    </draw:frame>")
	}

	b.WriteString("\n   </draw:page>")
}

func writeFrameStart(b *strings.Builder, r Rect, attrs, class string) {
	b.WriteString(`<draw:frame ` + attrs +
		` svg:width="` + cm(r.Width) + `" svg:height="` + cm(r.Height) +
		`" svg:x="` + cm(r.X) + `" svg:y="` + cm(r.Y) + `"`)
	if class != "" {
		b.WriteString(` presentation:class="` + class + `"`)
	}
	b.WriteString(">")
}
