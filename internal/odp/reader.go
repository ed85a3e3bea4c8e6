package odp

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader provides access to the members of an ODP archive.
type Reader struct {
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
	names     []string
	manifest  []ManifestEntry
}

// ManifestEntry is one manifest:file-entry.
type ManifestEntry struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

type manifestDoc struct {
	Entries []ManifestEntry `xml:"file-entry"`
}

var (
	ErrMimetypeNotFound   = errors.New("mimetype file not found")
	ErrMimetypeNotFirst   = errors.New("mimetype must be the first archive member")
	ErrMimetypeCompressed = errors.New("mimetype must not be compressed")
	ErrInvalidMimetype    = errors.New("invalid mimetype: must be '" + MediaType + "'")
	ErrManifestNotFound   = errors.New(ManifestPath + " not found")
)

// Open opens an ODP file and validates its structure.
func Open(path string) (*Reader, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ODP: %w", err)
	}

	r := &Reader{
		zipReader: zr,
		files:     make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, "./")
		r.files[name] = f
		r.names = append(r.names, name)
	}

	if err := r.validateMimetype(); err != nil {
		zr.Close()
		return nil, err
	}
	if err := r.parseManifest(); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// Close closes the underlying archive.
func (r *Reader) Close() error {
	return r.zipReader.Close()
}

// Names returns member names in archive order.
func (r *Reader) Names() []string {
	return r.names
}

// Manifest returns the manifest entries in document order.
func (r *Reader) Manifest() []ManifestEntry {
	return r.manifest
}

// ReadFile reads the contents of a member.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	f, ok := r.files[strings.TrimPrefix(path, "./")]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// Outline extracts the slide outline from content.xml.
func (r *Reader) Outline() ([]SlideOutline, error) {
	content, err := r.ReadFile(ContentPath)
	if err != nil {
		return nil, err
	}
	return ParseOutline(content)
}

func (r *Reader) validateMimetype() error {
	f, ok := r.files[MimetypePath]
	if !ok {
		return ErrMimetypeNotFound
	}
	if r.names[0] != MimetypePath {
		return ErrMimetypeNotFirst
	}
	if f.Method != zip.Store {
		return ErrMimetypeCompressed
	}

	content, err := r.ReadFile(MimetypePath)
	if err != nil {
		return fmt.Errorf("failed to read mimetype: %w", err)
	}
	if string(content) != MediaType {
		return ErrInvalidMimetype
	}
	return nil
}

func (r *Reader) parseManifest() error {
	content, err := r.ReadFile(ManifestPath)
	if err != nil {
		return ErrManifestNotFound
	}

	var m manifestDoc
	if err := xml.Unmarshal(content, &m); err != nil {
		return fmt.Errorf("failed to parse manifest: %w", err)
	}
	r.manifest = m.Entries
	return nil
}
