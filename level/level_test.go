package level

import (
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func sampleLevel() *Level {
	door := (&Item{Class: "door", ID: "door"}).
		Set("open", Bool(false)).
		Set("label", String("exit")).
		Set("sprite", Sprite{Image: "gfx/door.png", ClipWidth: 32, ClipHeight: 64, Rendering: DefaultRendering()})
	lever := (&Item{Class: "lever", ID: "lever", Fixed: true}).
		Set("target", ItemRef("door")).
		Set("steps", NewList(IntField, Int(-1), Int(2)))
	deco := (&Item{Class: "decoration"}).
		Set("tint", Color{Opacity: 0.5, Red: 1, Green: 0, Blue: 0.25}).
		Set("friends", NewList(ItemField))

	return &Level{
		Name:   "castle",
		Width:  1024,
		Height: 768,
		Music:  "music/castle.ogg",
		Layers: []*Layer{{
			Class:    "action_layer",
			Name:     "main",
			Tag:      "gameplay",
			Width:    1024,
			Height:   768,
			Items:    []*Item{door, lever, deco},
			Priority: []string{"door"},
		}},
	}
}

func TestSaveLoadKeepsFieldKinds(t *testing.T) {
	lvl := sampleLevel()
	path := filepath.Join(t.TempDir(), "levels", "castle.json")

	if err := Save(path, lvl); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(lvl, got) {
		t.Fatalf("level changed through JSON:\nwant %#v\ngot  %#v", lvl.Layers[0].Items, got.Layers[0].Items)
	}

	friends, ok := got.Layers[0].Items[2].Fields["friends"].(List)
	if !ok || friends.Elem != ItemField || friends.Values == nil || len(friends.Values) != 0 {
		t.Fatalf("empty reference list should stay an empty list, got %#v", got.Layers[0].Items[2].Fields["friends"])
	}
}

func TestFromBytesRejectsMalformedSources(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"zero_size", `{"name":"x","width":0,"height":10}`},
		{"layer_without_class", `{"name":"x","width":5,"height":5,"layers":[{"width":1,"height":1}]}`},
		{"item_without_class", `{"name":"x","width":5,"height":5,"layers":[{"class":"l","items":[{"id":"a"}]}]}`},
		{"unknown_field_type", `{"name":"x","width":5,"height":5,"layers":[{"class":"l","items":[{"class":"c","fields":{"f":{"type":"vector","value":1}}}]}]}`},
		{"list_element_mismatch", `{"name":"x","width":5,"height":5,"layers":[{"class":"l","items":[{"class":"c","fields":{"f":{"type":"int","list":true,"value":["a"]}}}]}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := FromBytes([]byte(c.src)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadFSStripsLevelsPrefix(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.json": {Data: []byte(`{"name":"tiny","width":8,"height":8}`)},
	}
	lvl, err := LoadFS(fsys, "levels/tiny.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.Name != "tiny" || lvl.Width != 8 {
		t.Fatalf("unexpected level %+v", lvl)
	}
}

func TestReferencesSkipEmptyIdentifiers(t *testing.T) {
	it := (&Item{Class: "c"}).
		Set("b", NewList(ItemField, ItemRef("x"), ItemRef(""), ItemRef("y"))).
		Set("a", ItemRef("z")).
		Set("c", ItemRef("")).
		Set("d", NewList(StringField, String("x")))

	want := []string{"z", "x", "y"}
	if got := it.References(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if !it.HasReferenceTo("y") || it.HasReferenceTo("") {
		t.Fatalf("unexpected HasReferenceTo result")
	}
}

func TestPartitionKeepsStorageOrder(t *testing.T) {
	l := &Layer{Class: "l"}
	l.AddItem(&Item{Class: "a"}, &Item{Class: "b", ID: "b"}, &Item{Class: "c"}, &Item{Class: "d", ID: "d"})

	ref, anon := l.Partition()
	if len(ref) != 2 || ref[0].ID != "b" || ref[1].ID != "d" {
		t.Fatalf("unexpected referenced items %v", ref)
	}
	if len(anon) != 2 || anon[0].Class != "a" || anon[1].Class != "c" {
		t.Fatalf("unexpected anonymous items %v", anon)
	}
	if l.Find("d") != ref[1] || l.Find("") != nil {
		t.Fatalf("Find returned the wrong item")
	}
}
