package armature

// IdentityKind separates the slot and bone namespaces. Documents may reuse
// the same string for a slot and a bone.
type IdentityKind uint8

const (
	KindBone IdentityKind = iota // non-renderable pivot
	KindSlot                     // renderable attachment
)

func (k IdentityKind) String() string {
	switch k {
	case KindBone:
		return "bone"
	case KindSlot:
		return "slot"
	default:
		return "unknown"
	}
}

// NodeIdentity is the composite key used for every name lookup. Never key a
// map on the bare name.
type NodeIdentity struct {
	Kind IdentityKind
	Name string
}

// SlotName returns the identity of the slot called name.
func SlotName(name string) NodeIdentity {
	return NodeIdentity{Kind: KindSlot, Name: name}
}

// BoneName returns the identity of the bone called name.
func BoneName(name string) NodeIdentity {
	return NodeIdentity{Kind: KindBone, Name: name}
}

func (id NodeIdentity) String() string {
	return id.Kind.String() + ":" + id.Name
}

// RootBoneName is the name the assembler records the skeleton root under.
const RootBoneName = "root"

// IdentityIndex maps every assembled record to its store identifier.
type IdentityIndex map[NodeIdentity]NodeID

// Lookup returns the identifier recorded for id.
func (ix IdentityIndex) Lookup(id NodeIdentity) (NodeID, bool) {
	nid, ok := ix[id]
	return nid, ok
}
