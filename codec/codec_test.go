package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/milk9111/levelc/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesAreLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTag(Layer)
	w.WriteI32(-2)
	w.WriteBool(true)
	w.WriteString("ab")
	require.NoError(t, w.Err)

	want := []byte{70, 0, 0, 0, 0xfe, 0xff, 0xff, 0xff, 1, 2, 0, 0, 0, 'a', 'b'}
	assert.Equal(t, want, buf.Bytes())
}

func TestReaderKeepsFirstError(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2}))

	assert.Zero(t, r.ReadU32())
	require.ErrorIs(t, r.Err, io.ErrUnexpectedEOF)

	// Later reads must not replace the first error.
	assert.Empty(t, r.ReadString())
	assert.ErrorIs(t, r.Err, io.ErrUnexpectedEOF)
}

func TestReaderRejectsMalformedValues(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		read func(r *Reader)
	}{
		{"bool_byte", []byte{7}, func(r *Reader) { r.ReadBool() }},
		{"huge_string", binary.LittleEndian.AppendUint32(nil, MaxStringLen+1), func(r *Reader) { r.ReadString() }},
		{"animation_content", append(binary.LittleEndian.AppendUint32(nil, 3), "gif"...), func(r *Reader) { r.ReadAnimation() }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(c.data))
			c.read(r)
			assert.ErrorIs(t, r.Err, ErrMalformed)
		})
	}
}

func TestScalarValuesRoundTrip(t *testing.T) {
	frame := level.Sprite{
		Image: "gfx/hero.png", Left: 4, Top: 8, ClipWidth: 16, ClipHeight: 32,
		Opaque:    level.Rect{Left: 1, Bottom: 30, Right: 15, Top: 2},
		Rendering: level.Rendering{Width: 16, Height: 32, Mirror: true, Opacity: 0.5, Red: 1, Green: 0.25, Blue: 1, Angle: 3.14},
	}
	values := []level.Value{
		level.Int(-42),
		level.UInt(42),
		level.Real(2.5),
		level.Bool(true),
		level.String("héllo"),
		level.Easing("sine:in_out"),
		frame,
		level.Animation{
			Content:  level.AnimationInline,
			Frames:   []level.Frame{{Duration: 0.1, Sprite: frame}, {Duration: 0.2, Sprite: frame}},
			Loops:    3,
			LoopBack: true, FirstIndex: 0, LastIndex: 1,
			Rendering: level.DefaultRendering(),
		},
		level.Animation{Content: level.AnimationFile, Path: "anim/walk.canim", Rendering: level.DefaultRendering()},
		level.Sample{Path: "sound/door.ogg", Loops: -1, Volume: 0.8},
		level.Font{Path: "font/fixed.ttf", Size: 12},
		level.Color{Opacity: 1, Red: 0.2, Green: 0.4, Blue: 0.6},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, v := range values {
		w.WriteValue(v)
	}
	require.NoError(t, w.Err)

	r := NewReader(&buf)
	for _, want := range values {
		got := r.ReadValue(want.FieldType())
		require.NoError(t, r.Err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, buf.Len())
}

func TestWriteValueRejectsReferences(t *testing.T) {
	w := NewWriter(io.Discard)
	w.WriteValue(level.ItemRef("door"))
	assert.True(t, errors.Is(w.Err, ErrItemValue))

	w = NewWriter(io.Discard)
	w.WriteValue(level.NewList(level.IntField))
	assert.Error(t, w.Err)
}

func TestHeaderVersions(t *testing.T) {
	cases := []struct {
		name    string
		header  Header
		layer   LayerHeader
		wantTag string
	}{
		{
			name:    "current",
			header:  Header{Version: Current, Name: "castle", Width: 100, Height: 50, Music: "m.ogg", ItemsCount: 3, LayerCount: 1},
			layer:   LayerHeader{Class: "action_layer", Width: 100, Height: 50, Tag: "front"},
			wantTag: "front",
		},
		{
			name:    "without_layer_tag",
			header:  Header{Version: Version{0, 7, 2}, Name: "old", Width: 10, Height: 10, LayerCount: 1},
			layer:   LayerHeader{Class: "decoration_layer", Width: 10, Height: 10, Tag: "dropped"},
			wantTag: "",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			w.WriteHeader(c.header)
			w.WriteLayerHeader(c.header.Version, c.layer)
			require.NoError(t, w.Err)

			r := NewReader(&buf)
			h, err := r.ReadHeader()
			require.NoError(t, err)
			assert.Equal(t, c.header, h)

			l := r.ReadLayerHeader(h.Version)
			require.NoError(t, r.Err)
			assert.Equal(t, c.wantTag, l.Tag)
			assert.Equal(t, c.layer.Class, l.Class)
		})
	}
}

func TestReadHeaderRejectsOldVersions(t *testing.T) {
	for _, v := range []Version{{0, 4, 9}, {1, 0, 0}} {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		w.WriteU32(v.Major)
		w.WriteU32(v.Minor)
		w.WriteU32(v.Release)

		_, err := NewReader(&buf).ReadHeader()
		assert.ErrorIs(t, err, ErrUnsupportedVersion, v.String())
	}
}

func TestTags(t *testing.T) {
	for ft := level.IntField; ft <= level.EasingField; ft++ {
		tag, ok := FieldTag(ft)
		require.True(t, ok, ft.String())
		assert.True(t, tag.IsField())
		assert.Equal(t, ft, tag.FieldType())
	}
	assert.True(t, FieldList.IsField())
	for _, tag := range []Tag{EOF, Layer, ItemDeclaration, ItemDefinition, BaseItem} {
		assert.False(t, tag.IsField(), tag.String())
		assert.True(t, tag.Known())
	}
	assert.False(t, Tag(99).Known())
	assert.Equal(t, "tag(99)", Tag(99).String())
}
