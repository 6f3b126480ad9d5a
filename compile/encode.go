package compile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/milk9111/levelc/codec"
	"github.com/milk9111/levelc/level"
	"github.com/milk9111/levelc/logging"
)

var (
	ErrUnresolvedReference = errors.New("compile: unresolved item reference")
	ErrUnknownFieldType    = errors.New("compile: unknown field type")
)

// Options tune compilation. The zero value is usable.
type Options struct {
	// Schema, when set, orders the fields of each item by their dependencies.
	Schema Schema
	Logger *logging.Logger
}

func (o Options) logger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}

// CompileLevel writes the compiled stream of lvl to dst. The stream is built
// in memory first: nothing reaches dst unless the whole level compiled.
func CompileLevel(dst io.Writer, lvl *level.Level, opts Options) error {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)

	w.WriteHeader(codec.Header{
		Version:    codec.Current,
		Name:       lvl.Name,
		Width:      lvl.Width,
		Height:     lvl.Height,
		Music:      lvl.Music,
		ItemsCount: uint32(lvl.ItemsCount()),
		LayerCount: uint32(len(lvl.Layers)),
	})

	c := NewContext()
	for i, l := range lvl.Layers {
		w.WriteTag(codec.Layer)
		if err := CompileLayer(w, l, c, opts); err != nil {
			return fmt.Errorf("compile: level %q: layer %d (%s): %w", lvl.Name, i, l.Class, err)
		}
	}
	w.WriteTag(codec.EOF)
	if w.Err != nil {
		return fmt.Errorf("compile: level %q: %w", lvl.Name, w.Err)
	}

	opts.logger().Debugf("compile: level %q: %d layers, %d items, %d bytes",
		lvl.Name, len(lvl.Layers), lvl.ItemsCount(), buf.Len())

	_, err := buf.WriteTo(dst)
	return err
}

// CompileLayer writes the layer header and the items of l. The layer tag
// itself is written by the caller. c is reset and then holds the declaration
// indices of the referenced items of l.
func CompileLayer(w *codec.Writer, l *level.Layer, c *Context, opts Options) error {
	w.WriteLayerHeader(codec.Current, codec.LayerHeader{
		Class:  l.Class,
		Width:  l.Width,
		Height: l.Height,
		Tag:    l.Tag,
	})

	referenced, anonymous := l.Partition()
	ordered, err := Order(referenced, l.Priority)
	if err != nil {
		return err
	}

	c.Reset()
	c.Declare(ordered)

	if c.Len() > 0 {
		w.WriteTag(codec.ItemDeclaration)
		w.WriteU32(uint32(c.Len()))
		for _, it := range ordered {
			w.WriteString(it.Class)
		}
		for _, it := range ordered {
			w.WriteTag(codec.ItemDefinition)
			if err := writeItem(w, it, c, opts.Schema); err != nil {
				return fmt.Errorf("item %q: %w", it.ID, err)
			}
		}
	}

	for i, it := range anonymous {
		w.WriteTag(codec.BaseItem)
		w.WriteString(it.Class)
		if err := writeItem(w, it, c, opts.Schema); err != nil {
			return fmt.Errorf("anonymous item %d (%s): %w", i, it.Class, err)
		}
	}

	opts.logger().Debugf("compile: layer %s: %d referenced, %d anonymous",
		l.Class, c.Len(), len(anonymous))
	return w.Err
}

func writeItem(w *codec.Writer, it *level.Item, c *Context, s Schema) error {
	w.WriteBool(it.Fixed)
	for _, name := range fieldOrder(it, s) {
		if err := writeField(w, name, it.Fields[name], c); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return w.Err
}

func writeField(w *codec.Writer, name string, v level.Value, c *Context) error {
	if v == nil {
		return ErrUnknownFieldType
	}
	if ref, ok := v.(level.ItemRef); ok && ref == "" {
		return nil
	}

	tag, ok := codec.FieldTag(v.FieldType())
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFieldType, v.FieldType())
	}

	list, isList := v.(level.List)
	if isList {
		w.WriteTag(codec.FieldList)
	}
	w.WriteTag(tag)
	w.WriteString(name)

	if !isList {
		return writeValue(w, v, c)
	}

	w.WriteU32(uint32(len(list.Values)))
	for i, e := range list.Values {
		if e == nil || level.IsList(e) || e.FieldType() != list.Elem {
			return fmt.Errorf("element %d: %w: %T in a list of %s", i, ErrUnknownFieldType, e, list.Elem)
		}
		if err := writeValue(w, e, c); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return w.Err
}

func writeValue(w *codec.Writer, v level.Value, c *Context) error {
	ref, ok := v.(level.ItemRef)
	if !ok {
		w.WriteValue(v)
		return w.Err
	}

	idx, ok := c.Index(string(ref))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnresolvedReference, string(ref))
	}
	w.WriteIndex(idx)
	return w.Err
}
