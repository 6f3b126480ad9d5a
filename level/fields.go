package level

import (
	"encoding/json"
	"fmt"
)

// jsonField is the on-disk shape of one field:
//
//	"speed": {"type": "real", "value": 2.5}
//	"targets": {"type": "item", "list": true, "value": ["door", "lamp"]}
type jsonField struct {
	Type  string          `json:"type"`
	List  bool            `json:"list,omitempty"`
	Value json.RawMessage `json:"value"`
}

func (f Fields) MarshalJSON() ([]byte, error) {
	out := make(map[string]jsonField, len(f))
	for name, v := range f {
		if v == nil {
			return nil, fmt.Errorf("level: field %q has no value", name)
		}
		var (
			raw []byte
			err error
		)
		if l, ok := v.(List); ok {
			raw, err = marshalList(l)
		} else {
			raw, err = json.Marshal(v)
		}
		if err != nil {
			return nil, fmt.Errorf("level: field %q: %w", name, err)
		}
		out[name] = jsonField{Type: v.FieldType().String(), List: IsList(v), Value: raw}
	}
	return json.Marshal(out)
}

func marshalList(l List) ([]byte, error) {
	elems := make([]json.RawMessage, 0, len(l.Values))
	for _, e := range l.Values {
		if e == nil || e.FieldType() != l.Elem || IsList(e) {
			return nil, fmt.Errorf("list of %s holds %T", l.Elem, e)
		}
		raw, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, raw)
	}
	return json.Marshal(elems)
}

func (f *Fields) UnmarshalJSON(b []byte) error {
	var in map[string]jsonField
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	out := make(Fields, len(in))
	for name, jf := range in {
		t, err := ParseFieldType(jf.Type)
		if err != nil {
			return fmt.Errorf("level: field %q: %w", name, err)
		}
		if !jf.List {
			v, err := unmarshalScalar(t, jf.Value)
			if err != nil {
				return fmt.Errorf("level: field %q: %w", name, err)
			}
			out[name] = v
			continue
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(jf.Value, &elems); err != nil {
			return fmt.Errorf("level: field %q: %w", name, err)
		}
		l := NewList(t, make([]Value, 0, len(elems))...)
		for i, raw := range elems {
			v, err := unmarshalScalar(t, raw)
			if err != nil {
				return fmt.Errorf("level: field %q[%d]: %w", name, i, err)
			}
			l.Values = append(l.Values, v)
		}
		out[name] = l
	}
	*f = out
	return nil
}

func unmarshalScalar(t FieldType, raw json.RawMessage) (Value, error) {
	switch t {
	case IntField:
		return decodeAs(raw, Int(0))
	case UIntField:
		return decodeAs(raw, UInt(0))
	case RealField:
		return decodeAs(raw, Real(0))
	case BoolField:
		return decodeAs(raw, Bool(false))
	case StringField:
		return decodeAs(raw, String(""))
	case ItemField:
		return decodeAs(raw, ItemRef(""))
	case EasingField:
		return decodeAs(raw, Easing(""))
	case SpriteField:
		return decodeAs(raw, Sprite{Rendering: DefaultRendering()})
	case AnimationField:
		return decodeAs(raw, Animation{Content: AnimationInline, Rendering: DefaultRendering()})
	case SampleField:
		return decodeAs(raw, Sample{Volume: 1})
	case FontField:
		return decodeAs(raw, Font{})
	case ColorField:
		return decodeAs(raw, Color{Opacity: 1})
	}
	return nil, fmt.Errorf("unsupported field type %s", t)
}

// decodeAs unmarshals raw over the defaults already set in v.
func decodeAs[T Value](raw json.RawMessage, v T) (Value, error) {
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
