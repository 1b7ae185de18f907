package armature

// NodeStore is the ownership-taking node container the assembler builds into
// and the playback dispatcher drives. Once a node has been handed to
// InsertRoot or AttachChild the caller must only reach it through its
// NodeID.
type NodeStore interface {
	// InsertRoot adds n (and its subtree) under the store's top-level node.
	InsertRoot(n *Node) NodeID

	// AttachChild moves child (and its subtree) under the node identified by
	// parent. Returns ErrNodeNotFound if parent is not in the store.
	AttachChild(parent NodeID, child *Node) (NodeID, error)

	// Mutate returns the live node for id, or ErrNodeNotFound.
	Mutate(id NodeID) (*Node, error)

	// RunComposition starts c on the node identified by id, superseding any
	// composition already running there.
	RunComposition(id NodeID, c *Composition) error
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, animation lifecycle events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event AnimationEvent)
}

// EventType identifies a kind of animation lifecycle event.
type EventType uint8

const (
	EventAnimationStarted    EventType = iota // a composition began on a node
	EventAnimationSuperseded                  // a running composition was replaced by a new one
	EventAnimationFinished                    // every channel of a composition completed
	EventAnimationStopped                     // a running composition was stopped explicitly
)

func (t EventType) String() string {
	switch t {
	case EventAnimationStarted:
		return "started"
	case EventAnimationSuperseded:
		return "superseded"
	case EventAnimationFinished:
		return "finished"
	case EventAnimationStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AnimationEvent carries animation lifecycle data for the ECS bridge.
type AnimationEvent struct {
	Type     EventType
	NodeID   NodeID
	EntityID uint32
	Name     string
	Elapsed  float64 // seconds into the composition when the event fired
}
