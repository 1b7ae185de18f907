package armature

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// restPose is a node's local transform before any composition touched it.
type restPose struct {
	X, Y     float64
	Rotation float64
}

func captureRest(n *Node) restPose {
	return restPose{X: n.X, Y: n.Y, Rotation: n.Rotation}
}

func (r restPose) apply(n *Node) {
	n.X = r.X
	n.Y = r.Y
	n.Rotation = r.Rotation
	n.MarkDirty()
}

// track drives one float64 node field from a gween Sequence of cumulative
// offsets. The field is written as base + offset so large rest values keep
// full precision.
type track struct {
	seq   *gween.Sequence
	base  float64
	field *float64
	done  bool
}

// player steps one Composition on one node. Each scalar component (x, y,
// rotation) gets its own sequence; the channels run in parallel.
type player struct {
	node    *Node
	comp    *Composition
	rest    restPose
	tracks  []*track
	elapsed float64
	Done    bool
}

// newPlayer creates a player for comp starting from rest. The node is reset
// to rest immediately.
func newPlayer(n *Node, comp *Composition, rest restPose) *player {
	p := &player{node: n, comp: comp, rest: rest}
	rest.apply(n)
	for _, ch := range comp.Channels {
		if len(ch.Segments) == 0 {
			continue
		}
		switch ch.Kind {
		case ChannelTranslate:
			p.addTrack(ch, &n.X, rest.X, func(s Segment) float64 { return s.Move.X() })
			p.addTrack(ch, &n.Y, rest.Y, func(s Segment) float64 { return s.Move.Y() })
		case ChannelRotate:
			p.addTrack(ch, &n.Rotation, rest.Rotation, func(s Segment) float64 { return s.Rotate })
		}
	}
	p.Done = len(p.tracks) == 0
	return p
}

func (p *player) addTrack(ch Channel, field *float64, base float64, delta func(Segment) float64) {
	tweens := make([]*gween.Tween, 0, len(ch.Segments))
	var offset float64
	for _, s := range ch.Segments {
		fn := s.Ease
		if fn == nil {
			fn = ease.Linear
		}
		end := offset + delta(s)
		tweens = append(tweens, gween.New(float32(offset), float32(end), float32(s.Duration), fn))
		offset = end
	}
	p.tracks = append(p.tracks, &track{
		seq:   gween.NewSequence(tweens...),
		base:  base,
		field: field,
	})
}

// advance steps all tracks by dt seconds and writes the node fields.
// Returns true once every track has completed.
func (p *player) advance(dt float32) bool {
	if p.Done {
		return true
	}
	p.elapsed += float64(dt)
	allDone := true
	for _, t := range p.tracks {
		if t.done {
			continue
		}
		val, _, seqDone := t.seq.Update(dt)
		*t.field = t.base + float64(val)
		t.done = seqDone
		if !seqDone {
			allDone = false
		}
	}
	if allDone {
		// Snap to the exact float64 end pose.
		p.applySample(p.comp.Duration())
		p.Done = true
		return true
	}
	p.node.MarkDirty()
	return false
}

// seek jumps to elapsed seconds, applying the pure sample and
// resynchronising the sequences.
func (p *player) seek(elapsed float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	p.elapsed = elapsed
	for _, t := range p.tracks {
		t.seq.Reset()
		_, _, t.done = t.seq.Update(float32(elapsed))
	}
	p.applySample(elapsed)
	p.Done = p.comp.Done(elapsed)
}

func (p *player) applySample(elapsed float64) {
	pose := p.comp.Sample(elapsed)
	p.node.X = p.rest.X + pose.Move.X()
	p.node.Y = p.rest.Y + pose.Move.Y()
	p.node.Rotation = p.rest.Rotation + pose.Rotate
	p.node.MarkDirty()
}
