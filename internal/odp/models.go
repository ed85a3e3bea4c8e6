// Package odp writes and reads OpenDocument Presentation archives.
package odp

import "time"

// MediaType is the exact content of the mimetype member.
const MediaType = "application/vnd.oasis.opendocument.presentation"

// Archive member names.
const (
	MimetypePath = "mimetype"
	ManifestPath = "META-INF/manifest.xml"
	MetaPath     = "meta.xml"
	SettingsPath = "settings.xml"
	StylesPath   = "styles.xml"
	ContentPath  = "content.xml"
	PicturesDir  = "Pictures/"
)

// Document is everything needed to produce one archive.
type Document struct {
	Meta     Metadata
	Pages    []Page
	Pictures []Picture
}

// Metadata is interpolated into meta.xml.
type Metadata struct {
	Title     string
	Author    string
	Generator string
	Created   time.Time
}

// Page is one draw:page: a title frame, a body frame and an optional image.
type Page struct {
	Title string
	Body  []string
	Image *ImageFrame
}

// ImageFrame places an embedded picture on a page.
type ImageFrame struct {
	Href string // archive path, e.g. Pictures/chart.png
	Rect
}

// Picture is an image stored under Pictures/ in the archive.
type Picture struct {
	Name      string // file name inside Pictures/
	MediaType string
	Data      []byte
}

// Path returns the picture's archive path.
func (p Picture) Path() string {
	return PicturesDir + p.Name
}
