package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/levelc/level"
	"github.com/milk9111/levelc/loader"
	"github.com/milk9111/levelc/store"
)

// dumpItem keeps whatever the stream holds, so that a level can be
// inspected without knowing its classes.
type dumpItem struct {
	class  string
	fixed  bool
	fields map[string]level.Value
}

func (d *dumpItem) Class() string       { return d.class }
func (d *dumpItem) SetFixed(fixed bool) { d.fixed = fixed }
func (d *dumpItem) Validate() error     { return nil }

func (d *dumpItem) SetField(name string, v level.Value) error {
	d.fields[name] = v
	return nil
}

type dumpFactory struct{}

func (dumpFactory) IsKnown(string) bool { return true }

func (dumpFactory) Create(class string) (loader.Item, error) {
	return &dumpItem{class: class, fields: map[string]level.Value{}}, nil
}

func newDumpCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dump [stored name]",
		Short: "Print the content of a compiled level",
		Args: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (len(args) != 1) {
				return fmt.Errorf("give either a stored name or --file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv()
			if err != nil {
				return err
			}

			var data []byte
			name := file
			if file != "" {
				data, err = os.ReadFile(file)
			} else {
				name = args[0]
				data, err = e.readStored(name)
			}
			if err != nil {
				return err
			}

			r, err := store.NewReader(bytes.NewReader(data))
			if err != nil {
				return err
			}
			defer r.Close()

			l, err := loader.New(r, name, dumpFactory{}, loader.WithLogger(e.log))
			if err != nil {
				return err
			}
			if err := l.CompleteRun(); err != nil {
				return err
			}
			lvl, err := l.DropLevel()
			if err != nil {
				return err
			}
			printLevel(cmd.OutOrStdout(), l.Version().String(), l.ItemsCount(), lvl)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "compiled level file")
	return cmd
}

func (e *env) readStored(name string) ([]byte, error) {
	st, err := e.openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.Get(name)
}

func printLevel(w io.Writer, version string, items int, lvl *loader.Level) {
	fmt.Fprintf(w, "level %q %dx%d version %s, %d items\n", lvl.Name, lvl.Width, lvl.Height, version, items)
	if lvl.Music != "" {
		fmt.Fprintf(w, "music %s\n", lvl.Music)
	}
	for li, l := range lvl.Layers {
		fmt.Fprintf(w, "layer %d %s %dx%d", li, l.Class, l.Width, l.Height)
		if l.Tag != "" {
			fmt.Fprintf(w, " tag %q", l.Tag)
		}
		fmt.Fprintln(w)

		index := make(map[loader.Item]int, len(l.Items))
		for i, it := range l.Items {
			index[it] = i
		}
		for i, it := range l.Items {
			d := it.(*dumpItem)
			fixed := ""
			if d.fixed {
				fixed = " fixed"
			}
			fmt.Fprintf(w, "  [%d] %s%s\n", i, d.class, fixed)

			names := make([]string, 0, len(d.fields))
			for n := range d.fields {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				fmt.Fprintf(w, "      %s: %s\n", n, formatValue(d.fields[n], index))
			}
		}
	}
}

func formatValue(v level.Value, index map[loader.Item]int) string {
	switch val := v.(type) {
	case loader.Reference:
		return fmt.Sprintf("item [%d]", index[val.Item])
	case level.List:
		parts := make([]string, len(val.Values))
		for i, e := range val.Values {
			parts[i] = formatValue(e, index)
		}
		return fmt.Sprintf("%s list [%s]", val.Elem, strings.Join(parts, ", "))
	case level.String:
		return fmt.Sprintf("string %q", string(val))
	}
	return fmt.Sprintf("%s %+v", v.FieldType(), v)
}
