package armature

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// SceneNodeName is the name of the scene's top-level container.
const SceneNodeName = "scene"

// Scene is the top-level object that owns the node tree and the running
// animation players. It implements NodeStore.
type Scene struct {
	root  *Node
	nodes map[NodeID]*Node
	store EntityStore
	debug bool

	// Playback
	players map[NodeID]*player
	order   []NodeID // start order, for deterministic stepping and events
	rest    map[NodeID]restPose
}

// NewScene creates a new scene with a pre-created top-level container.
func NewScene() *Scene {
	root := NewContainer(SceneNodeName)
	return &Scene{
		root:    root,
		nodes:   map[NodeID]*Node{root.ID: root},
		players: make(map[NodeID]*player),
		rest:    make(map[NodeID]restPose),
	}
}

// Root returns the scene's top-level container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Len returns the number of nodes owned by the scene, the top-level
// container included.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// --- NodeStore ---

// InsertRoot adds n and its subtree under the scene's top-level container.
func (s *Scene) InsertRoot(n *Node) NodeID {
	s.root.AddChild(n)
	s.index(n)
	debugf("insert root %q (id %d)", n.Name, n.ID)
	return n.ID
}

// AttachChild moves child and its subtree under the node identified by
// parent.
func (s *Scene) AttachChild(parent NodeID, child *Node) (NodeID, error) {
	p, ok := s.nodes[parent]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "attach %q: parent id %d", child.Name, parent)
	}
	p.AddChild(child)
	s.index(child)
	return child.ID, nil
}

// Mutate returns the live node for id.
func (s *Scene) Mutate(id NodeID) (*Node, error) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "node id %d", id)
	}
	return n, nil
}

// RunComposition starts c on the node identified by id. A composition
// already running on that node is superseded, never blended. Every run
// starts from the node's rest pose: its transform the first time any
// composition ran on it.
func (s *Scene) RunComposition(id NodeID, c *Composition) error {
	n, err := s.Mutate(id)
	if err != nil {
		return err
	}
	if c == nil {
		return errors.Errorf("run composition on %q: nil composition", n.Name)
	}
	rest, ok := s.rest[id]
	if !ok {
		rest = captureRest(n)
		s.rest[id] = rest
	}
	if old, running := s.players[id]; running {
		s.emit(EventAnimationSuperseded, old)
		s.removeOrder(id)
	}
	p := newPlayer(n, c, rest)
	s.players[id] = p
	s.order = append(s.order, id)
	s.emit(EventAnimationStarted, p)
	debugf("run composition on %q: %d channels, %.3fs", n.Name, len(c.Channels), c.Duration())
	return nil
}

// index records n and its descendants.
func (s *Scene) index(n *Node) {
	n.Walk(func(d *Node) bool {
		s.nodes[d.ID] = d
		return true
	})
}

// --- Playback ---

// Update advances every player by one tick, using ebiten's TPS as the tick
// rate, and refreshes world transforms.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.Advance(dt)
}

// Advance steps every running player by dt seconds, removes players that
// finished and refreshes world transforms. Finished events go out once the
// play order is settled, so a listener may start or stop compositions.
func (s *Scene) Advance(dt float32) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
		stats.playerCount = len(s.order)
	}

	live := make([]NodeID, 0, len(s.order))
	var finished []*player
	for _, id := range s.order {
		p := s.players[id]
		if p.advance(dt) {
			delete(s.players, id)
			finished = append(finished, p)
			continue
		}
		live = append(live, id)
	}
	s.order = live
	stats.finished = len(finished)
	for _, p := range finished {
		s.emit(EventAnimationFinished, p)
	}

	if s.debug {
		stats.stepTime = time.Since(t0)
		t0 = time.Now()
	}

	s.RefreshTransforms()

	if s.debug {
		stats.transformTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// RefreshTransforms recomputes the world transform of every dirty node.
func (s *Scene) RefreshTransforms() {
	updateWorldTransform(s.root, identityTransform, false)
}

// Seek jumps the player on id to elapsed seconds since its start.
func (s *Scene) Seek(id NodeID, elapsed float64) error {
	p, ok := s.players[id]
	if !ok {
		return errors.Wrapf(ErrNodeNotFound, "seek: no composition running on id %d", id)
	}
	p.seek(elapsed)
	return nil
}

// Playing reports whether a composition is running on id.
func (s *Scene) Playing(id NodeID) bool {
	_, ok := s.players[id]
	return ok
}

// NumPlaying returns the number of running players.
func (s *Scene) NumPlaying() int {
	return len(s.players)
}

// Stop halts the composition on id, leaving the node where it is.
// No-op if nothing is running there.
func (s *Scene) Stop(id NodeID) {
	p, ok := s.players[id]
	if !ok {
		return
	}
	delete(s.players, id)
	s.removeOrder(id)
	s.emit(EventAnimationStopped, p)
}

// StopAll halts every running composition.
func (s *Scene) StopAll() {
	for _, id := range append([]NodeID(nil), s.order...) {
		s.Stop(id)
	}
}

func (s *Scene) removeOrder(id NodeID) {
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Scene) emit(t EventType, p *player) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(AnimationEvent{
		Type:     t,
		NodeID:   p.node.ID,
		EntityID: p.node.EntityID,
		Name:     p.node.Name,
		Elapsed:  p.elapsed,
	})
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed, and per-tick stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
