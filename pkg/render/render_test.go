package render

import (
	"math"
	"sync"
	"testing"
	"time"
)

func TestNodeAttrs(t *testing.T) {
	n := NewNode("path").SetAttr("id", "a").SetAttr("d", "M0,0Z").SetAttr("id", "b")

	if got := n.ID(); got != "b" {
		t.Errorf("ID() = %q, want b", got)
	}
	if len(n.Attrs) != 2 {
		t.Errorf("len(Attrs) = %d, want 2 (replace keeps order)", len(n.Attrs))
	}
	if n.Attrs[0].Name != "id" {
		t.Errorf("first attribute = %q, want id", n.Attrs[0].Name)
	}
	if _, ok := n.Attr("missing"); ok {
		t.Error("Attr(missing) should not be found")
	}
}

func TestNodeStyles(t *testing.T) {
	n := NewNode("path").SetStyle("fill", "#fff").SetStyle("stroke", "none")
	if got := n.StyleString(); got != "fill:#fff;stroke:none" {
		t.Errorf("StyleString() = %q", got)
	}
	if v, _ := n.Style("fill"); v != "#fff" {
		t.Errorf("Style(fill) = %q", v)
	}
}

func TestNodeHasClass(t *testing.T) {
	n := NewNode("g").SetAttr("class", "arc outerarc")
	if !n.HasClass("arc") || !n.HasClass("outerarc") {
		t.Error("HasClass should match each class")
	}
	if n.HasClass("innerarc") {
		t.Error("HasClass(innerarc) should be false")
	}
}

func TestNodeSize(t *testing.T) {
	n := NewNode("svg").SetAttr("width", "200").SetAttr("height", "bad")
	w, h := n.Size()
	if w != 200 || h != 0 {
		t.Errorf("Size() = (%v, %v), want (200, 0)", w, h)
	}
}

func TestNodeFindAndClone(t *testing.T) {
	root := NewNode("svg")
	g := root.Append("g")
	g.Append("path").SetAttr("id", "p1")
	g.Append("text").SetAttr("id", "t1")

	paths := root.Find(func(n *Node) bool { return n.Tag == "path" })
	if len(paths) != 1 || paths[0].ID() != "p1" {
		t.Fatalf("Find(path) = %v", paths)
	}

	c := root.Clone()
	c.Children[0].Children[0].SetAttr("id", "changed")
	if paths[0].ID() != "p1" {
		t.Error("Clone should not share attributes with the original")
	}
}

func TestDocumentAppendIsIndependent(t *testing.T) {
	doc := NewDocument(200, 100)
	first := NewNode("svg")
	doc.AppendChild(first)
	doc.AppendChild(NewNode("svg"))

	children := doc.Children()
	if len(children) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(children))
	}
	if children[0] != first {
		t.Error("first subtree should be kept as-is")
	}

	doc.Clear()
	if len(doc.Children()) != 0 {
		t.Error("Clear should remove all subtrees")
	}
}

func TestDocumentConcurrentAppend(t *testing.T) {
	doc := NewDocument(10, 10)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc.AppendChild(NewNode("svg"))
		}()
	}
	wg.Wait()
	if got := len(doc.Children()); got != 50 {
		t.Errorf("len(Children()) = %d, want 50", got)
	}
}

func TestEases(t *testing.T) {
	for name, ease := range Eases {
		if ease(0) != 0 || math.Abs(ease(1)-1) > 1e-12 {
			t.Errorf("%s ease should map 0→0 and 1→1", name)
		}
	}
	if got := CubicInOut(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("CubicInOut(0.5) = %v, want 0.5", got)
	}
	if CubicInOut(0.25) >= 0.25 {
		t.Error("CubicInOut should start slower than linear")
	}
}

func TestTransitionValueAt(t *testing.T) {
	tr := &Transition{
		Attr:     "transform",
		Tween:    TranslateTween(0, 0, 40, -20),
		Duration: time.Second,
	}

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{-time.Second, "translate(0,0)"},
		{0, "translate(0,0)"},
		{500 * time.Millisecond, "translate(20,-10)"},
		{time.Second, "translate(40,-20)"},
		{5 * time.Second, "translate(40,-20)"},
	}
	for _, tt := range tests {
		if got := tr.ValueAt(tt.elapsed); got != tt.want {
			t.Errorf("ValueAt(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestTransitionDelay(t *testing.T) {
	tr := &Transition{Tween: TranslateTween(0, 0, 10, 0), Duration: time.Second, Delay: time.Second}
	if got := tr.ValueAt(time.Second); got != "translate(0,0)" {
		t.Errorf("ValueAt(delay) = %q", got)
	}
	if got := tr.End(); got != 2*time.Second {
		t.Errorf("End() = %v, want 2s", got)
	}
}

func TestTransitionZeroDurationJumps(t *testing.T) {
	tr := &Transition{Tween: TranslateTween(0, 0, 10, 0)}
	if got := tr.ValueAt(0); got != "translate(10,0)" {
		t.Errorf("zero-duration ValueAt(0) = %q", got)
	}
}

func TestTransitionSample(t *testing.T) {
	tr := &Transition{Tween: TranslateTween(0, 0, 4, 0), Duration: time.Second}
	got := tr.Sample(4)
	want := []string{"translate(0,0)", "translate(1,0)", "translate(2,0)", "translate(3,0)", "translate(4,0)"}
	if len(got) != len(want) {
		t.Fatalf("len(Sample(4)) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sample(4)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSeekFreezesCopy(t *testing.T) {
	root := NewNode("g")
	text := root.Append("text")
	text.AddTransition(&Transition{Attr: "transform", Tween: TranslateTween(0, 0, 10, 10), Duration: time.Second})

	frozen := Seek(root, time.Second)
	ft := frozen.Children[0]
	if v, _ := ft.Attr("transform"); v != "translate(10,10)" {
		t.Errorf("frozen transform = %q", v)
	}
	if len(ft.Transitions) != 0 {
		t.Error("Seek should drop transitions")
	}
	if len(text.Transitions) != 1 {
		t.Error("Seek should not modify the original")
	}
	if _, ok := text.Attr("transform"); ok {
		t.Error("Seek should not set attributes on the original")
	}
	if got := End(root); got != time.Second {
		t.Errorf("End() = %v, want 1s", got)
	}
}

func TestProviderDefaults(t *testing.T) {
	p := NewProvider()
	tr := p.Transition("d", TranslateTween(0, 0, 1, 1))
	if tr.Duration != DefaultDuration {
		t.Errorf("default duration = %v, want %v", tr.Duration, DefaultDuration)
	}
	if tr.Ease == nil || tr.Ease(0.3) != 0.3 {
		t.Error("default ease should be linear")
	}
	if a, b := p.NewID(), p.NewID(); a == b {
		t.Errorf("NewID() returned duplicate %q", a)
	}
}

func TestProviderOptions(t *testing.T) {
	p := NewProvider(
		WithDuration(250*time.Millisecond),
		WithEase(CubicInOut),
		WithIDs(SequentialIDs("chart")),
	)
	if got := p.Transition("d", nil).Duration; got != 250*time.Millisecond {
		t.Errorf("duration = %v", got)
	}
	if got := p.NewID(); got != "chart-1" {
		t.Errorf("NewID() = %q, want chart-1", got)
	}
	if got := p.NewID(); got != "chart-2" {
		t.Errorf("NewID() = %q, want chart-2", got)
	}
}
