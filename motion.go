package armature

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// segmentEase is the easing curve applied to every compiled segment.
var segmentEase ease.TweenFunc = ease.InOutCubic

// ChannelKind names the node property a channel drives.
type ChannelKind uint8

const (
	ChannelTranslate ChannelKind = iota // X and Y
	ChannelRotate                       // Rotation
)

func (k ChannelKind) String() string {
	switch k {
	case ChannelTranslate:
		return "translate"
	case ChannelRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Segment is one relative eased motion: move or rotate by a delta over
// Duration seconds.
type Segment struct {
	Duration float64        // seconds
	Move     mgl64.Vec2     // translate channels only
	Rotate   float64        // radians, rotate channels only
	Ease     ease.TweenFunc // applied to the segment's time parameter
}

// Channel is a strict sequence of segments: no gaps, no overlaps.
type Channel struct {
	Kind     ChannelKind
	Segments []Segment
}

// Duration returns the summed duration of all segments.
func (c Channel) Duration() float64 {
	var total float64
	for _, s := range c.Segments {
		total += s.Duration
	}
	return total
}

// Pose is the cumulative offset a composition has applied at some instant.
type Pose struct {
	Move   mgl64.Vec2
	Rotate float64
}

// sample returns the channel's cumulative offset at elapsed seconds.
func (c Channel) sample(elapsed float64) Pose {
	var p Pose
	if elapsed <= 0 {
		return p
	}
	start := 0.0
	for _, s := range c.Segments {
		end := start + s.Duration
		if elapsed >= end {
			p.Move = p.Move.Add(s.Move)
			p.Rotate += s.Rotate
			start = end
			continue
		}
		local := elapsed - start
		p.Move[0] += easeValue(s.Ease, local, s.Move[0], s.Duration)
		p.Move[1] += easeValue(s.Ease, local, s.Move[1], s.Duration)
		p.Rotate += easeValue(s.Ease, local, s.Rotate, s.Duration)
		break
	}
	return p
}

func easeValue(fn ease.TweenFunc, t, change, duration float64) float64 {
	if change == 0 {
		return 0
	}
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(t), 0, float32(change), float32(duration)))
}

// Composition runs its channels in parallel; it is done once every channel
// is. Compositions are immutable after compile and may be started any number
// of times.
type Composition struct {
	Channels []Channel
}

// Channel returns the channel of the given kind, if present.
func (c *Composition) Channel(kind ChannelKind) (Channel, bool) {
	for _, ch := range c.Channels {
		if ch.Kind == kind {
			return ch, true
		}
	}
	return Channel{}, false
}

// Duration returns the duration of the longest channel.
func (c *Composition) Duration() float64 {
	var longest float64
	for _, ch := range c.Channels {
		if d := ch.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// Done reports whether every channel has completed at elapsed seconds.
func (c *Composition) Done(elapsed float64) bool {
	return elapsed >= c.Duration()
}

// Sample returns the cumulative offset at elapsed seconds since start. It is
// a pure function of elapsed.
func (c *Composition) Sample(elapsed float64) Pose {
	var p Pose
	for _, ch := range c.Channels {
		cp := ch.sample(elapsed)
		switch ch.Kind {
		case ChannelTranslate:
			p.Move = p.Move.Add(cp.Move)
		case ChannelRotate:
			p.Rotate += cp.Rotate
		}
	}
	return p
}
