package armature

import (
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
	if n.Renderable {
		t.Error("container should not be renderable")
	}
}

func TestNewSpriteDefaults(t *testing.T) {
	region := TextureRegion{Name: "head", Width: 32, Height: 32, OriginalW: 32, OriginalH: 32}
	n := NewSprite("spr", region)
	assertNodeDefaults(t, n, "spr", NodeTypeSprite)
	if n.TextureRegion != region {
		t.Errorf("TextureRegion = %v, want %v", n.TextureRegion, region)
	}
	if !n.Renderable {
		t.Error("Renderable should be true")
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.PivotX != 0 || n.PivotY != 0 {
		t.Errorf("Pivot = (%v, %v), want (0, 0)", n.PivotX, n.PivotY)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
}

func TestNodeTypeString(t *testing.T) {
	if got := NodeTypeContainer.String(); got != "container" {
		t.Errorf("NodeTypeContainer.String() = %q, want container", got)
	}
	if got := NodeTypeSprite.String(); got != "sprite" {
		t.Errorf("NodeTypeSprite.String() = %q, want sprite", got)
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewSprite("c", TextureRegion{})
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("IDs should increase: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.Children()[0] != child {
		t.Error("Children()[0] should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewContainer("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

// --- Reparenting keeps sibling order ---

func TestReparentFromMiddle(t *testing.T) {
	parent := NewContainer("parent")
	other := NewContainer("other")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	other.AddChild(b)

	if b.Parent != other {
		t.Error("b.Parent should be other")
	}
	got := names(parent.Children())
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("children = %v, want [a c]", got)
	}
}

// --- Walk / Depth ---

func TestWalkOrder(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	b := NewContainer("b")
	a1 := NewContainer("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	var got []string
	root.Walk(func(n *Node) bool {
		got = append(got, n.Name)
		return true
	})
	want := []string{"root", "a", "a1", "b"}
	if len(got) != len(want) {
		t.Fatalf("Walk visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Walk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkSkipSubtree(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a.AddChild(NewContainer("a1"))
	root.AddChild(a)
	root.AddChild(NewContainer("b"))

	count := 0
	root.Walk(func(n *Node) bool {
		count++
		return n != a
	})
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

func TestDepth(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if d := root.Depth(); d != 0 {
		t.Errorf("root.Depth() = %d, want 0", d)
	}
	if d := leaf.Depth(); d != 2 {
		t.Errorf("leaf.Depth() = %d, want 2", d)
	}
}

// --- Dirty propagation ---

func TestDirtyPropagationOnAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)

	// Clear dirty flags manually
	child.transformDirty = false
	grandchild.transformDirty = false

	parent.AddChild(child)

	if !child.transformDirty {
		t.Error("child should be dirty after AddChild")
	}
	if !grandchild.transformDirty {
		t.Error("grandchild should be dirty after AddChild")
	}
}

func TestDirtyPropagationOnReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	child.transformDirty = false
	p2.AddChild(child)

	if !child.transformDirty {
		t.Error("child should be dirty after moving to a new parent")
	}
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
