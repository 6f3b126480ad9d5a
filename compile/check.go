package compile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/levelc/level"
)

// Severity of a Diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Check causes.
const (
	CausePriorityWithoutID = "Prioritized items must have an id."
	CauseUnknownPriority   = "The prioritized identifier names no item of the layer."
	CausePriorityConflict  = "The build order is in conflict with the dependency based on the fields."
	CauseDuplicateID       = "This identifier is already in use."
	CauseMissingTarget     = "There is no item with such identifier."
	CauseRequiredField     = "Field value is required."
	CauseUnknownClass      = "There is no class with such name."
	CauseUnknownField      = "The class has no field with such name."
	CauseFieldType         = "The value does not match the type of the field."
)

// Diagnostic is one problem found in a level source.
type Diagnostic struct {
	Layer int
	// Item is the identifier of the offending item, or "#n" for the n-th
	// item of the layer when it has none.
	Item     string
	Subject  string
	Cause    string
	Severity Severity
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("layer %d: item %s: %s: %s", d.Layer, d.Item, d.Severity, d.Cause)
	if d.Subject != "" {
		s += " (" + d.Subject + ")"
	}
	return s
}

// Report collects the diagnostics of a level.
type Report struct {
	Diagnostics []Diagnostic
}

// OK reports whether no error was found. Warnings do not count.
func (r Report) OK() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == Error {
			return false
		}
	}
	return true
}

// ForItem returns the diagnostics attached to item key of layer.
func (r Report) ForItem(layer int, key string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Layer == layer && d.Item == key {
			out = append(out, d)
		}
	}
	return out
}

func (r Report) String() string {
	lines := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Report) add(layer int, key, subject, cause string, sev Severity) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Layer: layer, Item: key, Subject: subject, Cause: cause, Severity: sev,
	})
}

// Check validates lvl without compiling it. Nothing is fixed: a priority
// order that contradicts the references is reported on both items but the
// compiler keeps it. schema may be nil.
func Check(lvl *level.Level, schema Schema) Report {
	var r Report
	for i, l := range lvl.Layers {
		checkLayer(&r, i, l, schema)
	}
	return r
}

func itemKey(l *level.Layer, it *level.Item) string {
	if it.ID != "" {
		return it.ID
	}
	for i, other := range l.Items {
		if other == it {
			return fmt.Sprintf("#%d", i)
		}
	}
	return "#?"
}

func checkLayer(r *Report, li int, l *level.Layer, schema Schema) {
	checkPriorities(r, li, l)

	ids := map[string]*level.Item{}
	for _, it := range l.Items {
		if !it.Referenced() {
			continue
		}
		if other, dup := ids[it.ID]; dup {
			r.add(li, itemKey(l, other), it.ID, CauseDuplicateID, Error)
			r.add(li, itemKey(l, it), it.ID, CauseDuplicateID, Error)
			continue
		}
		ids[it.ID] = it
	}

	for _, it := range l.Items {
		checkItem(r, li, l, it, ids, schema)
	}
}

func checkPriorities(r *Report, li int, l *level.Layer) {
	prioritized := make(map[string]bool, len(l.Priority))
	for _, id := range l.Priority {
		prioritized[id] = true
	}

	for i, id := range l.Priority {
		if id == "" {
			r.add(li, fmt.Sprintf("priority[%d]", i), "", CausePriorityWithoutID, Error)
			continue
		}
		it := l.Find(id)
		if it == nil {
			r.add(li, id, id, CauseUnknownPriority, Error)
			continue
		}
		for _, next := range l.Priority[i+1:] {
			if next == "" || !it.HasReferenceTo(next) {
				continue
			}
			subject := id + "/" + next
			r.add(li, next, subject, CausePriorityConflict, Error)
			r.add(li, id, subject, CausePriorityConflict, Error)
		}

		// Targets left out of the priority list are always placed after it.
		seen := make(map[string]bool)
		for _, ref := range it.References() {
			if prioritized[ref] || seen[ref] || l.Find(ref) == nil {
				continue
			}
			seen[ref] = true
			subject := id + "/" + ref
			r.add(li, ref, subject, CausePriorityConflict, Error)
			r.add(li, id, subject, CausePriorityConflict, Error)
		}
	}
}

func checkItem(r *Report, li int, l *level.Layer, it *level.Item, ids map[string]*level.Item, schema Schema) {
	key := itemKey(l, it)

	for _, name := range it.Fields.Names() {
		v := it.Fields[name]
		if list, ok := v.(level.List); ok && list.Elem == level.ItemField {
			for _, e := range list.Values {
				if ref, _ := e.(level.ItemRef); ids[string(ref)] == nil {
					r.add(li, key, string(ref), CauseMissingTarget, Error)
				}
			}
			continue
		}
		if ref, ok := v.(level.ItemRef); ok && ref != "" && ids[string(ref)] == nil {
			r.add(li, key, string(ref), CauseMissingTarget, Error)
		}
	}

	if schema == nil {
		return
	}
	if !schema.IsKnown(it.Class) {
		r.add(li, key, it.Class, CauseUnknownClass, Error)
		return
	}

	specs := schema.FieldSpecs(it.Class)
	for _, name := range it.Fields.Names() {
		spec, ok := lookupField(schema, it.Class, name)
		if !ok {
			// The loader drops such fields with a warning.
			r.add(li, key, name, CauseUnknownField, Warning)
			continue
		}
		v := it.Fields[name]
		if v == nil || v.FieldType() != spec.Type || level.IsList(v) != spec.List {
			r.add(li, key, name, CauseFieldType, Warning)
		}
	}

	var missing []string
	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		v, ok := it.Fields[spec.Name]
		if !ok || v == nil {
			missing = append(missing, spec.Name)
			continue
		}
		if ref, isRef := v.(level.ItemRef); isRef && ref == "" {
			missing = append(missing, spec.Name)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		r.add(li, key, name, CauseRequiredField, Error)
	}
}
