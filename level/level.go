package level

import "sort"

// Level is the editable, source-side description of a level: what the
// compiler reads and the editor saves.
type Level struct {
	Name   string   `json:"name"`
	Width  uint32   `json:"width"`
	Height uint32   `json:"height"`
	Music  string   `json:"music,omitempty"`
	Layers []*Layer `json:"layers,omitempty"`
}

// Layer is a set of items sharing a layer class.
type Layer struct {
	// Class is the layer type name, e.g. "action_layer".
	Class  string  `json:"class"`
	Name   string  `json:"name,omitempty"`
	Tag    string  `json:"tag,omitempty"`
	Width  uint32  `json:"width"`
	Height uint32  `json:"height"`
	Items  []*Item `json:"items,omitempty"`

	// Priority forces the compilation order of some identified items,
	// overriding the order computed from their references.
	Priority []string `json:"priority,omitempty"`
}

// Item is a placed object: an instance of a class with field values.
type Item struct {
	Class string `json:"class"`

	// ID is empty for anonymous items, which cannot be referenced.
	ID     string `json:"id,omitempty"`
	Fixed  bool   `json:"fixed,omitempty"`
	Fields Fields `json:"fields,omitempty"`
}

// Fields maps field names to values.
type Fields map[string]Value

// Names returns the field names in lexicographic order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set assigns a field value, allocating the map when needed.
func (it *Item) Set(name string, v Value) *Item {
	if it.Fields == nil {
		it.Fields = Fields{}
	}
	it.Fields[name] = v
	return it
}

// Referenced reports whether the item has an identifier.
func (it *Item) Referenced() bool {
	return it != nil && it.ID != ""
}

// References returns every identifier the item points to through its
// item-reference fields, in field-name order.
func (it *Item) References() []string {
	var ids []string
	for _, name := range it.Fields.Names() {
		ids = append(ids, References(it.Fields[name])...)
	}
	return ids
}

// HasReferenceTo reports whether one of the item's fields points to id.
func (it *Item) HasReferenceTo(id string) bool {
	for _, r := range it.References() {
		if r == id {
			return true
		}
	}
	return false
}

// AddItem appends items to the layer.
func (l *Layer) AddItem(items ...*Item) *Layer {
	l.Items = append(l.Items, items...)
	return l
}

// Find returns the first item identified by id.
func (l *Layer) Find(id string) *Item {
	if id == "" {
		return nil
	}
	for _, it := range l.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Partition splits the items into referenced and anonymous ones, keeping
// storage order in both.
func (l *Layer) Partition() (referenced, anonymous []*Item) {
	for _, it := range l.Items {
		if it.Referenced() {
			referenced = append(referenced, it)
		} else {
			anonymous = append(anonymous, it)
		}
	}
	return referenced, anonymous
}

// ItemsCount returns the number of items over all layers.
func (lvl *Level) ItemsCount() int {
	n := 0
	for _, l := range lvl.Layers {
		n += len(l.Items)
	}
	return n
}
