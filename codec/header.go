package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedVersion is returned for streams this package cannot read.
var ErrUnsupportedVersion = errors.New("codec: unsupported level version")

// Version is the format version written at the head of every stream.
type Version struct {
	Major, Minor, Release uint32
}

// Current is the version written by this package.
var Current = Version{Major: 0, Minor: 9, Release: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Release)
}

// Supported reports whether streams of version v can be decoded.
func (v Version) Supported() bool {
	return v.Major == 0 && v.Minor >= 5
}

// HasName reports whether the level header carries the level name.
func (v Version) HasName() bool {
	return v.Major > 0 || v.Minor >= 5
}

// HasLayerTag reports whether layer headers carry a tag string.
func (v Version) HasLayerTag() bool {
	return v.Major > 0 || v.Minor >= 9
}

// Header is the level record preceding the first layer.
type Header struct {
	Version Version
	Name    string
	Width   uint32
	Height  uint32
	Music   string

	// ItemsCount is the number of items in the level, for progress display.
	ItemsCount uint32
	LayerCount uint32
}

// WriteHeader writes h using the layout of h.Version.
func (w *Writer) WriteHeader(h Header) {
	w.WriteU32(h.Version.Major)
	w.WriteU32(h.Version.Minor)
	w.WriteU32(h.Version.Release)
	if h.Version.HasName() {
		w.WriteString(h.Name)
	}
	w.WriteU32(h.Width)
	w.WriteU32(h.Height)
	w.WriteString(h.Music)
	w.WriteU32(h.ItemsCount)
	w.WriteU32(h.LayerCount)
}

// ReadHeader reads a level header. Unsupported versions stop the read right
// after the version triple.
func (r *Reader) ReadHeader() (Header, error) {
	var h Header
	h.Version.Major = r.ReadU32()
	h.Version.Minor = r.ReadU32()
	h.Version.Release = r.ReadU32()
	if r.Err != nil {
		return h, fmt.Errorf("codec: read version: %w", r.Err)
	}
	if !h.Version.Supported() {
		return h, fmt.Errorf("%w: %s", ErrUnsupportedVersion, h.Version)
	}

	if h.Version.HasName() {
		h.Name = r.ReadString()
	}
	h.Width = r.ReadU32()
	h.Height = r.ReadU32()
	h.Music = r.ReadString()
	h.ItemsCount = r.ReadU32()
	h.LayerCount = r.ReadU32()
	if r.Err != nil {
		return h, fmt.Errorf("codec: read level header: %w", r.Err)
	}
	return h, nil
}

// LayerHeader follows every layer tag.
type LayerHeader struct {
	Class  string
	Width  uint32
	Height uint32
	Tag    string
}

func (w *Writer) WriteLayerHeader(v Version, h LayerHeader) {
	w.WriteString(h.Class)
	w.WriteU32(h.Width)
	w.WriteU32(h.Height)
	if v.HasLayerTag() {
		w.WriteString(h.Tag)
	}
}

func (r *Reader) ReadLayerHeader(v Version) LayerHeader {
	var h LayerHeader
	h.Class = r.ReadString()
	h.Width = r.ReadU32()
	h.Height = r.ReadU32()
	if v.HasLayerTag() {
		h.Tag = r.ReadString()
	}
	return h
}
