package armature

import (
	"github.com/pkg/errors"
)

// Assembly is the result of building a skeleton into a NodeStore.
type Assembly struct {
	// Index maps every slot and bone (and the root) to its store identifier.
	Index IdentityIndex
	// Root is the store identifier of the skeleton root.
	Root NodeID
}

// entry is the staged-arena slot for one identity: either Staged (node is
// non-nil, not yet reachable through the store) or Inserted (node is nil and
// id is store-resident). A staged node may already hang under another staged
// node; it becomes Inserted when its top ancestor enters the store.
type entry struct {
	node *Node
	id   NodeID
}

func (e *entry) staged() bool { return e.node != nil }

// assembler holds the state of one Assemble call.
type assembler struct {
	doc     *SkeletonDocument
	atlas   *Atlas
	store   NodeStore
	entries map[NodeIdentity]*entry
	owners  map[*Node]NodeIdentity
	bones   map[string]BoneRecord
	root    *Node
}

// Assemble builds the node tree described by doc into store. Every node is
// created and staged first; the root is then inserted and every record is
// moved under its parent, slots before bones. Parents may be declared after
// their children. Any unresolved name fails the whole assembly; failures
// detected before the root is inserted leave store untouched.
func Assemble(doc *SkeletonDocument, atlas *Atlas, store NodeStore) (*Assembly, error) {
	a := &assembler{
		doc:     doc,
		atlas:   atlas,
		store:   store,
		entries: make(map[NodeIdentity]*entry, len(doc.Slots)+len(doc.Bones)+1),
		owners:  make(map[*Node]NodeIdentity, len(doc.Slots)+len(doc.Bones)+1),
		bones:   make(map[string]BoneRecord, len(doc.Bones)),
	}
	if err := a.create(); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	rootID := a.insertRoot()
	if err := a.resolve(); err != nil {
		return nil, err
	}
	index, err := a.verify()
	if err != nil {
		return nil, err
	}
	debugf("assembled %q: %d slots, %d bones", doc.Name, len(doc.Slots), len(doc.Bones))
	return &Assembly{Index: index, Root: rootID}, nil
}

// create builds every node and stages it by identity.
func (a *assembler) create() error {
	for _, s := range a.doc.Slots {
		id := SlotName(s.Name)
		region, err := a.atlas.Region(s.AttachmentName)
		if err != nil {
			return recordErr(id, "display.name", err)
		}
		n := NewSprite(s.Name, region)
		n.applyTransform(s.Transform)
		n.SetPivot(float64(region.Width)/2, float64(region.Height)/2)
		if err := a.stage(id, n); err != nil {
			return err
		}
	}
	for _, b := range a.doc.Bones {
		id := BoneName(b.Name)
		if b.Name == RootBoneName && b.ParentBoneName != nil {
			return recordErr(id, "parent",
				errors.Wrapf(ErrDuplicateIdentity, "bone %q is reserved for the skeleton root", RootBoneName))
		}
		t := IdentityTransform()
		if b.Transform != nil {
			t = *b.Transform
		}
		n := NewContainer(b.Name)
		n.applyTransform(t)
		if err := a.stage(id, n); err != nil {
			return err
		}
		a.bones[b.Name] = b
	}

	rootID := BoneName(RootBoneName)
	if e, ok := a.entries[rootID]; ok {
		a.root = e.node
	} else {
		a.root = NewContainer(RootBoneName)
		_ = a.stage(rootID, a.root)
	}
	return nil
}

func (a *assembler) stage(id NodeIdentity, n *Node) error {
	if _, dup := a.entries[id]; dup {
		return recordErr(id, "name", errors.Wrapf(ErrDuplicateIdentity, "%s declared twice", id))
	}
	n.UserData = id
	a.entries[id] = &entry{node: n}
	a.owners[n] = id
	return nil
}

// validate checks every parent reference and that every bone chain reaches
// the root, before anything is handed to the store.
func (a *assembler) validate() error {
	for _, s := range a.doc.Slots {
		if !a.hasBone(s.ParentBoneName) {
			return recordErr(SlotName(s.Name), "parent",
				errors.Wrapf(ErrUnknownParent, "bone %q", s.ParentBoneName))
		}
	}
	for _, b := range a.doc.Bones {
		if b.ParentBoneName == nil {
			continue
		}
		if !a.hasBone(*b.ParentBoneName) {
			return recordErr(BoneName(b.Name), "parent",
				errors.Wrapf(ErrUnknownParent, "bone %q", *b.ParentBoneName))
		}
	}
	for _, b := range a.doc.Bones {
		if err := a.checkChain(b); err != nil {
			return err
		}
	}
	return nil
}

func (a *assembler) hasBone(name string) bool {
	if name == RootBoneName {
		return true
	}
	_, ok := a.bones[name]
	return ok
}

// checkChain follows b's parents up to the root or a parentless bone.
func (a *assembler) checkChain(b BoneRecord) error {
	seen := map[string]bool{b.Name: true}
	cur := b
	for cur.ParentBoneName != nil && *cur.ParentBoneName != RootBoneName {
		name := *cur.ParentBoneName
		if seen[name] {
			return recordErr(BoneName(b.Name), "parent",
				errors.Wrapf(ErrParentCycle, "bone %q is its own ancestor via %q", b.Name, name))
		}
		seen[name] = true
		cur = a.bones[name]
	}
	return nil
}

// insertRoot hands the root to the store under its top-level node.
func (a *assembler) insertRoot() NodeID {
	id := a.store.InsertRoot(a.root)
	a.markInserted(a.root)
	return id
}

// resolve moves every slot, then every bone, under its parent.
func (a *assembler) resolve() error {
	for _, s := range a.doc.Slots {
		if err := a.attach(SlotName(s.Name), BoneName(s.ParentBoneName)); err != nil {
			return err
		}
	}
	for _, b := range a.doc.Bones {
		if b.Name == RootBoneName {
			continue
		}
		parent := BoneName(RootBoneName)
		if b.ParentBoneName != nil {
			parent = BoneName(*b.ParentBoneName)
		}
		if err := a.attach(BoneName(b.Name), parent); err != nil {
			return err
		}
	}
	return nil
}

// attach moves the staged node for child under parent. A store-resident
// parent goes through the store; a staged parent is reached directly.
func (a *assembler) attach(child, parent NodeIdentity) error {
	ce := a.entries[child]
	pe, ok := a.entries[parent]
	if !ok {
		return recordErr(child, "parent", errors.Wrapf(ErrUnknownParent, "%s", parent))
	}
	if !ce.staged() {
		return recordErr(child, "name", errors.Wrapf(ErrDuplicateIdentity, "%s already inserted", child))
	}
	node := ce.node
	if pe.staged() {
		pe.node.AddChild(node)
		return nil
	}
	if _, err := a.store.AttachChild(pe.id, node); err != nil {
		return recordErr(child, "parent", err)
	}
	a.markInserted(node)
	return nil
}

// markInserted flips n and every staged descendant to Inserted.
func (a *assembler) markInserted(n *Node) {
	n.Walk(func(d *Node) bool {
		if id, ok := a.owners[d]; ok {
			e := a.entries[id]
			e.id = d.ID
			e.node = nil
		}
		return true
	})
}

// verify checks every identity resolves through the store.
func (a *assembler) verify() (IdentityIndex, error) {
	index := make(IdentityIndex, len(a.entries))
	for id, e := range a.entries {
		if e.staged() {
			return nil, recordErr(id, "parent", errors.Wrapf(ErrUnknownParent, "%s never reached the root", id))
		}
		if _, err := a.store.Mutate(e.id); err != nil {
			return nil, recordErr(id, "id", err)
		}
		index[id] = e.id
	}
	return index, nil
}
