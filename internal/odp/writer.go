package odp

import (
	"archive/zip"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"
	"time"
)

var (
	ErrUnknownPicture   = errors.New("image frame references a picture that is not embedded")
	ErrDuplicatePicture = errors.New("duplicate picture name")
	ErrInvalidPicture   = errors.New("invalid picture")
)

// Writer serializes a Document into an ODP archive.
type Writer struct {
	doc Document
}

// NewWriter checks that every image frame points at an embedded picture
// and that picture names are unique.
func NewWriter(doc Document) (*Writer, error) {
	names := make(map[string]struct{}, len(doc.Pictures))
	for _, p := range doc.Pictures {
		if p.Name == "" || strings.ContainsAny(p.Name, `/\`) {
			return nil, fmt.Errorf("%w: name %q", ErrInvalidPicture, p.Name)
		}
		if p.MediaType == "" {
			return nil, fmt.Errorf("%w: %q has no media type", ErrInvalidPicture, p.Name)
		}
		if _, ok := names[p.Path()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePicture, p.Name)
		}
		names[p.Path()] = struct{}{}
	}

	for i, page := range doc.Pages {
		if page.Image == nil {
			continue
		}
		if _, ok := names[page.Image.Href]; !ok {
			return nil, fmt.Errorf("%w: page %d -> %q", ErrUnknownPicture, i+1, page.Image.Href)
		}
	}

	if doc.Meta.Created.IsZero() {
		doc.Meta.Created = time.Now()
	}

	return &Writer{doc: doc}, nil
}

type member struct {
	name   string
	method uint16
	data   []byte
}

// WriteTo writes the archive. The mimetype member is always first and
// stored uncompressed.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	members, err := w.members()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: out}
	zw := zip.NewWriter(cw)
	modified := w.doc.Meta.Created

	for _, m := range members {
		if err := writeMember(zw, m, modified); err != nil {
			return cw.n, err
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return cw.n, nil
}

// writeMember writes one archive entry. Stored entries carry their CRC and
// sizes in the local header with no data descriptor and no extra field, so
// the mimetype content starts at a fixed offset.
func writeMember(zw *zip.Writer, m member, modified time.Time) error {
	fh := &zip.FileHeader{Name: m.name, Method: m.method}

	var (
		fw  io.Writer
		err error
	)
	if m.method == zip.Store {
		fh.CRC32 = crc32.ChecksumIEEE(m.data)
		fh.CompressedSize64 = uint64(len(m.data))
		fh.UncompressedSize64 = uint64(len(m.data))
		if !isASCII(m.name) {
			fh.Flags |= 0x800 // UTF-8 name
		}
		fw, err = zw.CreateRaw(fh)
	} else {
		fh.Modified = modified
		fw, err = zw.CreateHeader(fh)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", m.name, err)
	}
	if _, err := fw.Write(m.data); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.name, err)
	}
	return nil
}

func (w *Writer) members() ([]member, error) {
	meta, err := BuildMeta(w.doc.Meta)
	if err != nil {
		return nil, err
	}
	styles, err := BuildStyles()
	if err != nil {
		return nil, err
	}
	settings, err := BuildSettings()
	if err != nil {
		return nil, err
	}

	members := []member{
		{name: MimetypePath, method: zip.Store, data: []byte(MediaType)},
		{name: ManifestPath, method: zip.Deflate, data: BuildManifest(w.doc.Pictures)},
		{name: MetaPath, method: zip.Deflate, data: meta},
		{name: StylesPath, method: zip.Deflate, data: styles},
		{name: SettingsPath, method: zip.Deflate, data: settings},
		{name: ContentPath, method: zip.Deflate, data: BuildContent(w.doc.Pages)},
	}
	// PNG data is already compressed.
	for _, p := range w.doc.Pictures {
		members = append(members, member{name: p.Path(), method: zip.Store, data: p.Data})
	}
	return members, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
