// Package compile turns level sources into the compiled level stream.
package compile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/levelc/level"
)

var ErrDuplicateIdentifier = errors.New("compile: duplicate identifier")

// Order returns the referenced items in compilation order.
//
// The items named by priority come first, in the given order. The others
// follow so that an item comes after the items it references, starting each
// depth-first walk from the smallest remaining identifier. An item leaves
// the working set before its references are walked, which ends cycles.
//
// Priority identifiers that match no item are skipped. A priority order that
// contradicts a reference is kept as is; Check reports it.
func Order(items []*level.Item, priority []string) ([]*level.Item, error) {
	byID := make(map[string]*level.Item, len(items))
	for _, it := range items {
		if !it.Referenced() {
			return nil, fmt.Errorf("compile: anonymous %s item cannot be ordered", it.Class)
		}
		if _, dup := byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, it.ID)
		}
		byID[it.ID] = it
	}

	out := make([]*level.Item, 0, len(items))
	remaining := make(map[string]*level.Item, len(items))
	for id, it := range byID {
		remaining[id] = it
	}

	for _, id := range priority {
		if it, ok := remaining[id]; ok {
			out = append(out, it)
			delete(remaining, id)
		}
	}

	ids := make([]string, 0, len(remaining))
	for id := range remaining {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var visit func(it *level.Item)
	visit = func(it *level.Item) {
		delete(remaining, it.ID)
		for _, ref := range it.References() {
			if dep, ok := remaining[ref]; ok {
				visit(dep)
			}
		}
		out = append(out, it)
	}

	for _, id := range ids {
		if it, ok := remaining[id]; ok {
			visit(it)
		}
	}

	return out, nil
}
