package render

import (
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Attr is a single element attribute or style property.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of a drawable tree. Attributes and style properties
// keep their insertion order so serialized output is stable.
//
// Node methods are not safe for concurrent use; a chart owns the subtree it
// builds until it hands it to a [Container].
type Node struct {
	Tag         string
	Attrs       []Attr
	Styles      []Attr
	Text        string
	Children    []*Node
	Transitions []*Transition

	// Data is the datum bound to the element, if any.
	Data any
}

// NewNode creates a detached element.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

// Append creates a child element and returns it.
func (n *Node) Append(tag string) *Node {
	c := NewNode(tag)
	n.Children = append(n.Children, c)
	return c
}

// AppendChild implements [Container].
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Size implements [Container] using the width and height attributes.
// Missing or malformed attributes count as zero.
func (n *Node) Size() (width, height float64) {
	return n.floatAttr("width"), n.floatAttr("height")
}

func (n *Node) floatAttr(name string) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// SetAttr sets an attribute, replacing an existing value.
func (n *Node) SetAttr(name, value string) *Node {
	n.Attrs = set(n.Attrs, name, value)
	return n
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	return get(n.Attrs, name)
}

// SetStyle sets a style property, replacing an existing value.
func (n *Node) SetStyle(name, value string) *Node {
	n.Styles = set(n.Styles, name, value)
	return n
}

// Style returns the value of a style property.
func (n *Node) Style(name string) (string, bool) {
	return get(n.Styles, name)
}

// StyleString renders the style properties as a CSS declaration list.
func (n *Node) StyleString() string {
	parts := make([]string, len(n.Styles))
	for i, s := range n.Styles {
		parts[i] = s.Name + ":" + s.Value
	}
	return strings.Join(parts, ";")
}

// SetText sets the text content.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Bind attaches a datum to the element.
func (n *Node) Bind(d any) *Node {
	n.Data = d
	return n
}

// AddTransition schedules an attribute transition on the element.
func (n *Node) AddTransition(t *Transition) *Node {
	n.Transitions = append(n.Transitions, t)
	return n
}

// ID returns the id attribute, or the empty string.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// HasClass reports whether the class attribute contains class.
func (n *Node) HasClass(class string) bool {
	v, _ := n.Attr("class")
	return slices.Contains(strings.Fields(v), class)
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns all descendants (including n) matching pred, in document
// order.
func (n *Node) Find(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if pred(x) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// Clone returns a deep copy of the subtree. Bound data and tweens are
// shared, since both are treated as immutable.
func (n *Node) Clone() *Node {
	c := &Node{
		Tag:         n.Tag,
		Attrs:       slices.Clone(n.Attrs),
		Styles:      slices.Clone(n.Styles),
		Text:        n.Text,
		Transitions: slices.Clone(n.Transitions),
		Data:        n.Data,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// Container is a drawable surface with measurable dimensions that charts
// append their subtrees to.
type Container interface {
	Size() (width, height float64)
	AppendChild(n *Node)
}

// Document is the top-level drawable surface. Appends are serialized, so
// concurrent chart calls on one document each add their own subtree.
type Document struct {
	Width  float64
	Height float64

	mu       sync.Mutex
	children []*Node
}

// NewDocument creates an empty document of the given size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Size implements [Container].
func (d *Document) Size() (width, height float64) {
	return d.Width, d.Height
}

// AppendChild implements [Container].
func (d *Document) AppendChild(n *Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.children = append(d.children, n)
}

// Children returns a snapshot of the document's top-level nodes.
func (d *Document) Children() []*Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.children)
}

// Clear removes every subtree from the document.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.children = nil
}

func set(attrs []Attr, name, value string) []Attr {
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, Attr{Name: name, Value: value})
}

func get(attrs []Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
