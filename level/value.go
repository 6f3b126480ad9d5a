package level

import "fmt"

// FieldType is the kind of value carried by an item field.
type FieldType uint8

const (
	InvalidField FieldType = iota
	IntField
	UIntField
	RealField
	BoolField
	StringField
	SpriteField
	AnimationField
	ItemField
	SampleField
	FontField
	ColorField
	EasingField
)

var fieldTypeNames = [...]string{
	InvalidField:   "invalid",
	IntField:       "int",
	UIntField:      "u_int",
	RealField:      "real",
	BoolField:      "bool",
	StringField:    "string",
	SpriteField:    "sprite",
	AnimationField: "animation",
	ItemField:      "item",
	SampleField:    "sample",
	FontField:      "font",
	ColorField:     "color",
	EasingField:    "easing",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Valid reports whether t names one of the twelve field kinds.
func (t FieldType) Valid() bool {
	return t > InvalidField && t <= EasingField
}

// ParseFieldType returns the field type spelled s.
func ParseFieldType(s string) (FieldType, error) {
	for i, name := range fieldTypeNames {
		if name == s && FieldType(i) != InvalidField {
			return FieldType(i), nil
		}
	}
	return InvalidField, fmt.Errorf("level: unknown field type %q", s)
}

// Value is a field value. Scalars are the concrete types below; a list of any
// scalar kind is a List.
type Value interface {
	FieldType() FieldType
}

type (
	Int    int32
	UInt   uint32
	Real   float64
	Bool   bool
	String string
	// ItemRef names another item of the same layer by identifier. The empty
	// reference means "no item".
	ItemRef string
	// Easing names an easing function, e.g. "sine:in_out".
	Easing string
)

func (Int) FieldType() FieldType       { return IntField }
func (UInt) FieldType() FieldType      { return UIntField }
func (Real) FieldType() FieldType      { return RealField }
func (Bool) FieldType() FieldType      { return BoolField }
func (String) FieldType() FieldType    { return StringField }
func (ItemRef) FieldType() FieldType   { return ItemField }
func (Easing) FieldType() FieldType    { return EasingField }
func (Sprite) FieldType() FieldType    { return SpriteField }
func (Animation) FieldType() FieldType { return AnimationField }
func (Sample) FieldType() FieldType    { return SampleField }
func (Font) FieldType() FieldType      { return FontField }
func (Color) FieldType() FieldType     { return ColorField }

// List is a homogeneous list of values of kind Elem. An empty list is still a
// value: it is not the same as an absent field.
type List struct {
	Elem   FieldType
	Values []Value
}

func (l List) FieldType() FieldType { return l.Elem }

// NewList builds a list of kind elem from values.
func NewList(elem FieldType, values ...Value) List {
	if values == nil {
		values = []Value{}
	}
	return List{Elem: elem, Values: values}
}

// IsList reports whether v is a List.
func IsList(v Value) bool {
	_, ok := v.(List)
	return ok
}

// References returns the identifiers an item-reference value (scalar or list)
// points to, skipping empty references. Other kinds yield nil.
func References(v Value) []string {
	switch val := v.(type) {
	case ItemRef:
		if val == "" {
			return nil
		}
		return []string{string(val)}
	case List:
		if val.Elem != ItemField {
			return nil
		}
		var ids []string
		for _, e := range val.Values {
			if r, ok := e.(ItemRef); ok && r != "" {
				ids = append(ids, string(r))
			}
		}
		return ids
	}
	return nil
}
