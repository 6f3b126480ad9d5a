package codec

import (
	"errors"
	"fmt"

	"github.com/milk9111/levelc/level"
)

// Animation content markers as they appear in the stream.
const (
	contentAnimation = "content_animation"
	contentFile      = "content_file"
)

// ErrItemValue is returned when an item reference is written as a plain
// value: references travel as declaration indices, see WriteIndex.
var ErrItemValue = errors.New("codec: item references are written as indices")

func (w *Writer) WriteRendering(a level.Rendering) {
	w.WriteU32(a.Width)
	w.WriteU32(a.Height)
	w.WriteBool(a.Mirror)
	w.WriteBool(a.Flip)
	w.WriteF64(a.Opacity)
	w.WriteF64(a.Red)
	w.WriteF64(a.Green)
	w.WriteF64(a.Blue)
	w.WriteF64(a.Angle)
}

func (r *Reader) ReadRendering() level.Rendering {
	var a level.Rendering
	a.Width = r.ReadU32()
	a.Height = r.ReadU32()
	a.Mirror = r.ReadBool()
	a.Flip = r.ReadBool()
	a.Opacity = r.ReadF64()
	a.Red = r.ReadF64()
	a.Green = r.ReadF64()
	a.Blue = r.ReadF64()
	a.Angle = r.ReadF64()
	return a
}

func (w *Writer) WriteSprite(s level.Sprite) {
	w.WriteString(s.Image)
	w.WriteU32(s.Left)
	w.WriteU32(s.Top)
	w.WriteU32(s.ClipWidth)
	w.WriteU32(s.ClipHeight)
	w.WriteU32(s.Opaque.Left)
	w.WriteU32(s.Opaque.Bottom)
	w.WriteU32(s.Opaque.Right)
	w.WriteU32(s.Opaque.Top)
	w.WriteRendering(s.Rendering)
}

func (r *Reader) ReadSprite() level.Sprite {
	var s level.Sprite
	s.Image = r.ReadString()
	s.Left = r.ReadU32()
	s.Top = r.ReadU32()
	s.ClipWidth = r.ReadU32()
	s.ClipHeight = r.ReadU32()
	s.Opaque.Left = r.ReadU32()
	s.Opaque.Bottom = r.ReadU32()
	s.Opaque.Right = r.ReadU32()
	s.Opaque.Top = r.ReadU32()
	s.Rendering = r.ReadRendering()
	return s
}

// WriteAnimation writes either the frames of an inline animation or the
// path of an animation file, followed by the rendering attributes.
func (w *Writer) WriteAnimation(a level.Animation) {
	switch a.Content {
	case level.AnimationFile:
		w.WriteString(contentFile)
		w.WriteString(a.Path)
		w.WriteRendering(a.Rendering)
	case level.AnimationInline, "":
		w.WriteString(contentAnimation)
		w.WriteU32(uint32(len(a.Frames)))
		for _, f := range a.Frames {
			w.WriteF64(f.Duration)
			w.WriteSprite(f.Sprite)
		}
		w.WriteU32(a.Loops)
		w.WriteBool(a.LoopBack)
		w.WriteU32(a.FirstIndex)
		w.WriteU32(a.LastIndex)
		w.WriteRendering(a.Rendering)
	default:
		if w.Err == nil {
			w.Err = fmt.Errorf("codec: unknown animation content %q", a.Content)
		}
	}
}

func (r *Reader) ReadAnimation() level.Animation {
	var a level.Animation
	switch content := r.ReadString(); {
	case r.Err != nil:
	case content == contentFile:
		a.Content = level.AnimationFile
		a.Path = r.ReadString()
		a.Rendering = r.ReadRendering()
	case content == contentAnimation:
		a.Content = level.AnimationInline
		n := r.ReadU32()
		for i := uint32(0); i < n && r.Err == nil; i++ {
			d := r.ReadF64()
			a.Frames = append(a.Frames, level.Frame{Duration: d, Sprite: r.ReadSprite()})
		}
		a.Loops = r.ReadU32()
		a.LoopBack = r.ReadBool()
		a.FirstIndex = r.ReadU32()
		a.LastIndex = r.ReadU32()
		a.Rendering = r.ReadRendering()
	default:
		r.Err = fmt.Errorf("%w: animation content %q", ErrMalformed, content)
	}
	return a
}

func (w *Writer) WriteSample(s level.Sample) {
	w.WriteString(s.Path)
	w.WriteI32(s.Loops)
	w.WriteF64(s.Volume)
}

func (r *Reader) ReadSample() level.Sample {
	var s level.Sample
	s.Path = r.ReadString()
	s.Loops = r.ReadI32()
	s.Volume = r.ReadF64()
	return s
}

func (w *Writer) WriteFont(f level.Font) {
	w.WriteString(f.Path)
	w.WriteF64(f.Size)
}

func (r *Reader) ReadFont() level.Font {
	var f level.Font
	f.Path = r.ReadString()
	f.Size = r.ReadF64()
	return f
}

func (w *Writer) WriteColor(c level.Color) {
	w.WriteF64(c.Opacity)
	w.WriteF64(c.Red)
	w.WriteF64(c.Green)
	w.WriteF64(c.Blue)
}

func (r *Reader) ReadColor() level.Color {
	var c level.Color
	c.Opacity = r.ReadF64()
	c.Red = r.ReadF64()
	c.Green = r.ReadF64()
	c.Blue = r.ReadF64()
	return c
}

// WriteIndex writes an item reference as its declaration index.
func (w *Writer) WriteIndex(i uint32) {
	w.WriteU32(i)
}

// WriteValue writes one scalar value in the layout of its kind. Item
// references and lists are rejected.
func (w *Writer) WriteValue(v level.Value) {
	if w.Err != nil {
		return
	}
	switch val := v.(type) {
	case level.Int:
		w.WriteI32(int32(val))
	case level.UInt:
		w.WriteU32(uint32(val))
	case level.Real:
		w.WriteF64(float64(val))
	case level.Bool:
		w.WriteBool(bool(val))
	case level.String:
		w.WriteString(string(val))
	case level.Easing:
		w.WriteString(string(val))
	case level.Sprite:
		w.WriteSprite(val)
	case level.Animation:
		w.WriteAnimation(val)
	case level.Sample:
		w.WriteSample(val)
	case level.Font:
		w.WriteFont(val)
	case level.Color:
		w.WriteColor(val)
	case level.ItemRef:
		w.Err = ErrItemValue
	default:
		w.Err = fmt.Errorf("codec: cannot write %T as a scalar", v)
	}
}

// ReadValue reads one scalar of kind t. Item references must be read with
// ReadU32 and resolved by the caller.
func (r *Reader) ReadValue(t level.FieldType) level.Value {
	switch t {
	case level.IntField:
		return level.Int(r.ReadI32())
	case level.UIntField:
		return level.UInt(r.ReadU32())
	case level.RealField:
		return level.Real(r.ReadF64())
	case level.BoolField:
		return level.Bool(r.ReadBool())
	case level.StringField:
		return level.String(r.ReadString())
	case level.EasingField:
		return level.Easing(r.ReadString())
	case level.SpriteField:
		return r.ReadSprite()
	case level.AnimationField:
		return r.ReadAnimation()
	case level.SampleField:
		return r.ReadSample()
	case level.FontField:
		return r.ReadFont()
	case level.ColorField:
		return r.ReadColor()
	}
	if r.Err == nil {
		r.Err = fmt.Errorf("%w: no scalar reader for %s", ErrMalformed, t)
	}
	return nil
}
