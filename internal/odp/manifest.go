package odp

import "strings"

// BuildManifest renders META-INF/manifest.xml: the fixed members followed
// by one entry per picture, in the given order.
func BuildManifest(pictures []Picture) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + MediaType + `"/>`)

	for _, name := range []string{ContentPath, StylesPath, MetaPath, SettingsPath} {
		writeFileEntry(&b, name, "text/xml")
	}
	for _, p := range pictures {
		writeFileEntry(&b, p.Path(), p.MediaType)
	}

	b.WriteString("\n</manifest:manifest>\n")
	return []byte(b.String())
}

func writeFileEntry(b *strings.Builder, path, mediaType string) {
	b.WriteString("\n " + `<manifest:file-entry manifest:full-path="` + EscapeAttr(path) +
		`" manifest:media-type="` + EscapeAttr(mediaType) + `"/>`)
}
