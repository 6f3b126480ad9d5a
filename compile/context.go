package compile

import "github.com/milk9111/levelc/level"

// Context maps the identifiers of the layer being compiled to their index in
// its declaration table.
type Context struct {
	index map[string]uint32
}

func NewContext() *Context {
	return &Context{index: map[string]uint32{}}
}

// Reset forgets every identifier. Called at the start of each layer.
func (c *Context) Reset() {
	clear(c.index)
}

// Declare assigns indices 0..n-1 to items, in order.
func (c *Context) Declare(items []*level.Item) {
	for i, it := range items {
		c.index[it.ID] = uint32(i)
	}
}

// Index returns the declaration index of id.
func (c *Context) Index(id string) (uint32, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Len is the size of the declaration table.
func (c *Context) Len() int { return len(c.index) }
