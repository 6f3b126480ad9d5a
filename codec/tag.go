// Package codec reads and writes the compiled level stream: record tags,
// little-endian primitives and the resource descriptors carried by fields.
package codec

import (
	"fmt"

	"github.com/milk9111/levelc/level"
)

// Tag is the code at the start of every record. Values are part of the wire
// format and never change within a format version.
type Tag uint32

const (
	EOF             Tag = 0
	ItemDeclaration Tag = 30
	ItemDefinition  Tag = 31
	BaseItem        Tag = 32
	FieldInt        Tag = 40
	FieldUInt       Tag = 41
	FieldReal       Tag = 42
	FieldBool       Tag = 43
	FieldString     Tag = 44
	FieldSprite     Tag = 45
	FieldAnimation  Tag = 46
	FieldItem       Tag = 47
	FieldSample     Tag = 48
	FieldFont       Tag = 49
	FieldList       Tag = 50
	Layer           Tag = 70
	FieldColor      Tag = 100
	FieldEasing     Tag = 101
)

var tagNames = map[Tag]string{
	EOF:             "eof",
	ItemDeclaration: "item_declaration",
	ItemDefinition:  "item_definition",
	BaseItem:        "base_item",
	FieldInt:        "field_int",
	FieldUInt:       "field_u_int",
	FieldReal:       "field_real",
	FieldBool:       "field_bool",
	FieldString:     "field_string",
	FieldSprite:     "field_sprite",
	FieldAnimation:  "field_animation",
	FieldItem:       "field_item",
	FieldSample:     "field_sample",
	FieldFont:       "field_font",
	FieldList:       "field_list",
	Layer:           "layer",
	FieldColor:      "field_color",
	FieldEasing:     "field_easing",
}

var fieldTags = map[level.FieldType]Tag{
	level.IntField:       FieldInt,
	level.UIntField:      FieldUInt,
	level.RealField:      FieldReal,
	level.BoolField:      FieldBool,
	level.StringField:    FieldString,
	level.SpriteField:    FieldSprite,
	level.AnimationField: FieldAnimation,
	level.ItemField:      FieldItem,
	level.SampleField:    FieldSample,
	level.FontField:      FieldFont,
	level.ColorField:     FieldColor,
	level.EasingField:    FieldEasing,
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", uint32(t))
}

// Known reports whether t is one of the defined record tags.
func (t Tag) Known() bool {
	_, ok := tagNames[t]
	return ok
}

// IsField reports whether t starts a field record, the list wrapper included.
func (t Tag) IsField() bool {
	return t == FieldList || t.FieldType() != level.InvalidField
}

// FieldType returns the scalar field kind introduced by t, or
// level.InvalidField when t is not a scalar field tag.
func (t Tag) FieldType() level.FieldType {
	for ft, tag := range fieldTags {
		if tag == t {
			return ft
		}
	}
	return level.InvalidField
}

// FieldTag returns the scalar tag for kind ft.
func FieldTag(ft level.FieldType) (Tag, bool) {
	t, ok := fieldTags[ft]
	return t, ok
}
