package armature

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// DefaultFrameRate is the divisor that turns raw keyframe durations into
// seconds when CompileConfig.FrameRate is zero.
const DefaultFrameRate = 5.0

// CompileConfig controls animation compilation.
type CompileConfig struct {
	// FrameRate converts keyframe durations to seconds: seconds = duration / FrameRate.
	// Zero means DefaultFrameRate.
	FrameRate float64
}

func (c CompileConfig) frameRate() float64 {
	if c.FrameRate <= 0 {
		return DefaultFrameRate
	}
	return c.FrameRate
}

// ProgramEntry binds one bone to the composition compiled for it.
type ProgramEntry struct {
	Identity    NodeIdentity
	Node        NodeID
	Composition *Composition
}

// Program is the compiled animation: one entry per animated bone, in track
// order. Read-only after Compile returns.
type Program struct {
	entries []ProgramEntry
	byID    map[NodeIdentity]int
}

// Entries returns the entries in track order. The returned slice MUST NOT be
// mutated by the caller.
func (p *Program) Entries() []ProgramEntry {
	return p.entries
}

// Len returns the number of entries.
func (p *Program) Len() int {
	return len(p.entries)
}

// Composition returns the composition compiled for id, if any.
func (p *Program) Composition(id NodeIdentity) (*Composition, bool) {
	i, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return p.entries[i].Composition, true
}

// Duration returns the duration of the longest composition.
func (p *Program) Duration() float64 {
	var longest float64
	for _, e := range p.entries {
		if d := e.Composition.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// Compile turns per-bone keyframe tracks into a Program of relative eased
// segments. A track naming a bone missing from index fails the whole compile,
// even when it has no keyframes. Tracks with no keyframes produce no entry.
func Compile(tracks []BoneTrack, index IdentityIndex, cfg CompileConfig) (*Program, error) {
	rate := cfg.frameRate()
	prog := &Program{
		entries: make([]ProgramEntry, 0, len(tracks)),
		byID:    make(map[NodeIdentity]int, len(tracks)),
	}
	for _, t := range tracks {
		id := BoneName(t.Bone)
		nodeID, ok := index.Lookup(id)
		if !ok {
			return nil, recordErr(id, "animation", errors.Wrapf(ErrUnknownAnimationTarget, "bone %q", t.Bone))
		}
		if t.Empty() {
			continue
		}
		comp := compileTrack(t, rate)
		if i, dup := prog.byID[id]; dup {
			// A bone listed twice: the later track wins, keeping the first position.
			prog.entries[i].Composition = comp
			warnf("animation lists bone %q more than once", t.Bone)
			continue
		}
		prog.byID[id] = len(prog.entries)
		prog.entries = append(prog.entries, ProgramEntry{Identity: id, Node: nodeID, Composition: comp})
	}
	return prog, nil
}

// CompileAnimation compiles the animation called name from doc. An empty
// name selects the document's first animation. A name the document lacks
// wraps ErrUnknownAnimation.
func CompileAnimation(doc *SkeletonDocument, name string, index IdentityIndex, cfg CompileConfig) (*Program, error) {
	var (
		anim Animation
		ok   bool
	)
	if name == "" {
		anim, ok = doc.DefaultAnimation()
		if !ok {
			return &Program{byID: map[NodeIdentity]int{}}, nil
		}
	} else if anim, ok = doc.Animation(name); !ok {
		return nil, errors.Wrapf(ErrUnknownAnimation, "no animation %q", name)
	}
	if cfg.FrameRate <= 0 && doc.FrameRate > 0 {
		debugf("document frame rate %v ignored; using %v", doc.FrameRate, cfg.frameRate())
	}
	return Compile(anim.Bones, index, cfg)
}

func compileTrack(t BoneTrack, rate float64) *Composition {
	comp := &Composition{}
	if len(t.Translate) > 0 {
		ch := Channel{Kind: ChannelTranslate}
		for i := 0; i+1 < len(t.Translate); i++ {
			ch.Segments = append(ch.Segments, Segment{
				Duration: t.Translate[i].Duration / rate,
				Move:     t.Translate[i+1].Value.Sub(t.Translate[i].Value),
				Ease:     segmentEase,
			})
		}
		comp.Channels = append(comp.Channels, ch)
	}
	if len(t.Rotate) > 0 {
		ch := Channel{Kind: ChannelRotate}
		for i := 0; i+1 < len(t.Rotate); i++ {
			ch.Segments = append(ch.Segments, Segment{
				Duration: t.Rotate[i].Duration / rate,
				Rotate:   mgl64.DegToRad(t.Rotate[i+1].Rotate - t.Rotate[i].Rotate),
				Ease:     segmentEase,
			})
		}
		comp.Channels = append(comp.Channels, ch)
	}
	return comp
}
