package armature

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Transform is a record's local transform as authored. Skew angles are in
// degrees: SkewX turns the y axis and doubles as the rotation, SkewY turns
// the x axis. They differ only for sheared records.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	SkewX, SkewY   float64
}

// IdentityTransform returns the transform used when a record has none.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Rotation returns SkewX in radians.
func (t Transform) Rotation() float64 {
	return mgl64.DegToRad(t.SkewX)
}

// Skew returns how far the x axis leans past the rotation, in radians.
func (t Transform) Skew() float64 {
	return mgl64.DegToRad(t.SkewY - t.SkewX)
}

// SlotRecord is one renderable attachment bound to a texture region.
type SlotRecord struct {
	Name           string
	AttachmentName string
	ParentBoneName string
	Transform      Transform
}

// BoneRecord is one non-renderable pivot. ParentBoneName is nil for the
// skeleton root; Transform is nil when the document omits it.
type BoneRecord struct {
	Name           string
	ParentBoneName *string
	Transform      *Transform
}

// TranslateFrame is an absolute translation sample held for Duration frames.
type TranslateFrame struct {
	Duration float64
	Value    mgl64.Vec2
}

// RotateFrame is an absolute rotation sample in degrees held for Duration frames.
type RotateFrame struct {
	Duration float64
	Rotate   float64
}

// BoneTrack holds the keyframes of one bone in document order.
type BoneTrack struct {
	Bone      string
	Translate []TranslateFrame
	Rotate    []RotateFrame
}

// Empty reports whether the track has no keyframes in any channel.
func (t BoneTrack) Empty() bool {
	return len(t.Translate) == 0 && len(t.Rotate) == 0
}

// Animation is one named clip of the armature.
type Animation struct {
	Name      string
	Duration  int // frames
	PlayTimes int // 0 loops forever in DragonBones; informational here
	Bones     []BoneTrack
}

// SkeletonDocument is the typed view of a parsed skeleton document.
// Read-only after ParseSkeleton returns.
type SkeletonDocument struct {
	Name       string
	FrameRate  float64 // authored frame rate, 0 when absent
	Slots      []SlotRecord
	Bones      []BoneRecord
	Animations []Animation
}

// DefaultAnimation returns the first animation, if any.
func (d *SkeletonDocument) DefaultAnimation() (Animation, bool) {
	if len(d.Animations) == 0 {
		return Animation{}, false
	}
	return d.Animations[0], true
}

// Animation returns the animation called name.
func (d *SkeletonDocument) Animation(name string) (Animation, bool) {
	for _, a := range d.Animations {
		if a.Name == name {
			return a, true
		}
	}
	return Animation{}, false
}

// Tracks returns the bone tracks of the default animation, or nil.
func (d *SkeletonDocument) Tracks() []BoneTrack {
	a, ok := d.DefaultAnimation()
	if !ok {
		return nil
	}
	return a.Bones
}

// --- JSON structure types ---

type jsonTransform struct {
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
	ScX *float64 `json:"scX"`
	ScY *float64 `json:"scY"`
	SkX *float64 `json:"skX"`
	SkY *float64 `json:"skY"`
}

type jsonDisplay struct {
	Name      *string        `json:"name"`
	Transform *jsonTransform `json:"transform"`
}

type jsonSkinSlot struct {
	Name    *string       `json:"name"`
	Parent  *string       `json:"parent"`
	Display []jsonDisplay `json:"display"`
}

type jsonSkin struct {
	Name string          `json:"name"`
	Slot *[]jsonSkinSlot `json:"slot"`
}

type jsonSlot struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

type jsonBone struct {
	Name      *string        `json:"name"`
	Parent    *string        `json:"parent"`
	Transform *jsonTransform `json:"transform"`
}

type jsonTranslateFrame struct {
	Duration *float64 `json:"duration"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
}

type jsonRotateFrame struct {
	Duration *float64 `json:"duration"`
	Rotate   *float64 `json:"rotate"`
}

type jsonBoneTimeline struct {
	Name           *string              `json:"name"`
	TranslateFrame []jsonTranslateFrame `json:"translateFrame"`
	RotateFrame    []jsonRotateFrame    `json:"rotateFrame"`
}

type jsonAnimation struct {
	Name      string             `json:"name"`
	Duration  int                `json:"duration"`
	PlayTimes int                `json:"playTimes"`
	Bone      []jsonBoneTimeline `json:"bone"`
}

type jsonArmature struct {
	Name      string          `json:"name"`
	FrameRate float64         `json:"frameRate"`
	Bone      *[]jsonBone     `json:"bone"`
	Slot      []jsonSlot      `json:"slot"`
	Skin      []jsonSkin      `json:"skin"`
	Animation []jsonAnimation `json:"animation"`
}

type jsonSkeleton struct {
	FrameRate float64        `json:"frameRate"`
	Armature  []jsonArmature `json:"armature"`
}

// ParseSkeleton parses a DragonBones skeleton document rooted at
// armature[0]. The slot and bone arrays are required; the animation array
// is optional.
func ParseSkeleton(jsonData []byte) (*SkeletonDocument, error) {
	var raw jsonSkeleton
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, errors.Wrapf(ErrParse, "skeleton JSON: %v", err)
	}
	if len(raw.Armature) == 0 {
		return nil, parseErrorf("skeleton JSON has no armature[0]")
	}
	arm := raw.Armature[0]
	if len(arm.Skin) == 0 || arm.Skin[0].Slot == nil {
		return nil, parseErrorf("armature[0].skin[0].slot is missing")
	}
	if arm.Bone == nil {
		return nil, parseErrorf("armature[0].bone is missing")
	}

	doc := &SkeletonDocument{
		Name:      arm.Name,
		FrameRate: arm.FrameRate,
	}
	if doc.FrameRate == 0 {
		doc.FrameRate = raw.FrameRate
	}

	slotParents := make(map[string]string, len(arm.Slot))
	for _, s := range arm.Slot {
		if s.Name != "" && s.Parent != "" {
			slotParents[s.Name] = s.Parent
		}
	}

	var err error
	if doc.Slots, err = parseSlots(*arm.Skin[0].Slot, slotParents); err != nil {
		return nil, err
	}
	if doc.Bones, err = parseBones(*arm.Bone); err != nil {
		return nil, err
	}
	for i, a := range arm.Animation {
		anim, err := parseAnimation(i, a)
		if err != nil {
			return nil, err
		}
		doc.Animations = append(doc.Animations, anim)
	}
	return doc, nil
}

func parseSlots(raw []jsonSkinSlot, slotParents map[string]string) ([]SlotRecord, error) {
	slots := make([]SlotRecord, 0, len(raw))
	for i, s := range raw {
		if s.Name == nil || *s.Name == "" {
			return nil, parseErrorf("armature[0].skin[0].slot[%d]: missing name", i)
		}
		// Slots without a display are empty attachment points.
		if len(s.Display) == 0 {
			continue
		}
		disp := s.Display[0]
		if disp.Name == nil || *disp.Name == "" {
			return nil, parseErrorf("slot %q: display[0] has no name", *s.Name)
		}
		var parent string
		if s.Parent != nil {
			parent = *s.Parent
		} else {
			parent = slotParents[*s.Name]
		}
		if parent == "" {
			return nil, parseErrorf("slot %q: missing parent", *s.Name)
		}
		slots = append(slots, SlotRecord{
			Name:           *s.Name,
			AttachmentName: *disp.Name,
			ParentBoneName: parent,
			Transform:      disp.Transform.toTransform(),
		})
	}
	return slots, nil
}

func parseBones(raw []jsonBone) ([]BoneRecord, error) {
	bones := make([]BoneRecord, 0, len(raw))
	for i, b := range raw {
		if b.Name == nil || *b.Name == "" {
			return nil, parseErrorf("armature[0].bone[%d]: missing name", i)
		}
		rec := BoneRecord{Name: *b.Name}
		if b.Parent != nil {
			parent := *b.Parent
			rec.ParentBoneName = &parent
		}
		if b.Transform != nil {
			t := b.Transform.toTransform()
			rec.Transform = &t
		}
		bones = append(bones, rec)
	}
	return bones, nil
}

func parseAnimation(index int, raw jsonAnimation) (Animation, error) {
	anim := Animation{
		Name:      raw.Name,
		Duration:  raw.Duration,
		PlayTimes: raw.PlayTimes,
		Bones:     make([]BoneTrack, 0, len(raw.Bone)),
	}
	for i, tl := range raw.Bone {
		if tl.Name == nil || *tl.Name == "" {
			return Animation{}, parseErrorf("animation[%d].bone[%d]: missing name", index, i)
		}
		track := BoneTrack{Bone: *tl.Name}
		for j, f := range tl.TranslateFrame {
			if f.Duration == nil {
				return Animation{}, parseErrorf("animation %q bone %q translateFrame[%d]: missing duration", raw.Name, track.Bone, j)
			}
			if f.X == nil && f.Y == nil {
				return Animation{}, parseErrorf("animation %q bone %q translateFrame[%d]: missing x/y", raw.Name, track.Bone, j)
			}
			track.Translate = append(track.Translate, TranslateFrame{
				Duration: *f.Duration,
				Value:    mgl64.Vec2{valueOr(f.X, 0), valueOr(f.Y, 0)},
			})
		}
		for j, f := range tl.RotateFrame {
			if f.Duration == nil {
				return Animation{}, parseErrorf("animation %q bone %q rotateFrame[%d]: missing duration", raw.Name, track.Bone, j)
			}
			if f.Rotate == nil {
				return Animation{}, parseErrorf("animation %q bone %q rotateFrame[%d]: missing rotate", raw.Name, track.Bone, j)
			}
			track.Rotate = append(track.Rotate, RotateFrame{Duration: *f.Duration, Rotate: *f.Rotate})
		}
		anim.Bones = append(anim.Bones, track)
	}
	return anim, nil
}

func (jt *jsonTransform) toTransform() Transform {
	if jt == nil {
		return IdentityTransform()
	}
	// An unsheared record may carry only skX.
	skX := valueOr(jt.SkX, 0)
	return Transform{
		X:      valueOr(jt.X, 0),
		Y:      valueOr(jt.Y, 0),
		ScaleX: valueOr(jt.ScX, 1),
		ScaleY: valueOr(jt.ScY, 1),
		SkewX:  skX,
		SkewY:  valueOr(jt.SkY, skX),
	}
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
