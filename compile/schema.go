package compile

import (
	"sort"

	"github.com/milk9111/levelc/level"
)

// FieldSpec describes one field an item class accepts.
type FieldSpec struct {
	Name     string
	Type     level.FieldType
	List     bool
	Required bool

	// After names fields that must be written before this one.
	After []string
}

// Schema describes item classes. It is optional for compilation, where it
// only refines the field order, and drives the class checks of Check.
type Schema interface {
	IsKnown(class string) bool
	// FieldSpecs returns the fields of class, inherited ones included.
	FieldSpecs(class string) []FieldSpec
}

func lookupField(s Schema, class, name string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}
	for _, f := range s.FieldSpecs(class) {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// fieldOrder returns the names of the fields set on it: sorted, except that
// a field comes after the fields its class says it depends on.
func fieldOrder(it *level.Item, s Schema) []string {
	names := it.Fields.Names()
	if s == nil {
		return names
	}

	after := map[string][]string{}
	for _, f := range s.FieldSpecs(it.Class) {
		if len(f.After) > 0 {
			deps := append([]string(nil), f.After...)
			sort.Strings(deps)
			after[f.Name] = deps
		}
	}

	pending := make(map[string]bool, len(names))
	for _, n := range names {
		pending[n] = true
	}

	out := make([]string, 0, len(names))
	var insert func(name string)
	insert = func(name string) {
		if !pending[name] {
			return
		}
		delete(pending, name)
		for _, dep := range after[name] {
			insert(dep)
		}
		out = append(out, name)
	}
	for _, n := range names {
		insert(n)
	}
	return out
}
