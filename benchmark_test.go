package armature

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// setupBenchScene creates a Scene with n sprite nodes for benchmark use.
func setupBenchScene(n int) *Scene {
	s := NewScene()
	region := TextureRegion{Width: 32, Height: 32, OriginalW: 32, OriginalH: 32}
	for i := 0; i < n; i++ {
		sp := NewSprite("sp", region)
		sp.X = float64(i%100) * 40
		sp.Y = float64(i/100) * 40
		s.InsertRoot(sp)
	}
	return s
}

// benchSkeleton returns a document with a chain of n bones, one slot per
// bone, declared leaf first.
func benchSkeleton(n int) *SkeletonDocument {
	doc := &SkeletonDocument{Name: "bench"}
	for i := n - 1; i >= 0; i-- {
		parent := "root"
		if i > 0 {
			parent = fmt.Sprintf("b%d", i-1)
		}
		doc.Bones = append(doc.Bones, BoneRecord{
			Name:           fmt.Sprintf("b%d", i),
			ParentBoneName: &parent,
			Transform:      &Transform{X: 10, ScaleX: 1, ScaleY: 1},
		})
		doc.Slots = append(doc.Slots, SlotRecord{
			Name:           fmt.Sprintf("s%d", i),
			AttachmentName: "head",
			ParentBoneName: fmt.Sprintf("b%d", i),
			Transform:      IdentityTransform(),
		})
	}
	return doc
}

func benchTracks(n, frames int) []BoneTrack {
	tracks := make([]BoneTrack, n)
	for i := range tracks {
		t := BoneTrack{Bone: fmt.Sprintf("b%d", i)}
		for f := 0; f < frames; f++ {
			t.Translate = append(t.Translate, TranslateFrame{Duration: 2, Value: mgl64.Vec2{float64(f), 0}})
			t.Rotate = append(t.Rotate, RotateFrame{Duration: 2, Rotate: float64(f * 10)})
		}
		tracks[i] = t
	}
	return tracks
}

// --- Transform Benchmarks ---

func BenchmarkTransform_10000Dirty(b *testing.B) {
	s := setupBenchScene(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Mark all transforms dirty.
		markSubtreeDirty(s.Root())
		updateWorldTransform(s.Root(), identityTransform, false)
	}
}

func BenchmarkTransform_10000Clean(b *testing.B) {
	s := setupBenchScene(10000)
	// Pre-compute so nothing is dirty.
	updateWorldTransform(s.Root(), identityTransform, true)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		updateWorldTransform(s.Root(), identityTransform, false)
	}
}

// --- Assembly Benchmarks ---

func BenchmarkAssemble_100Bones(b *testing.B) {
	atlas, err := LoadAtlas([]byte(headAtlasJSON))
	if err != nil {
		b.Fatal(err)
	}
	doc := benchSkeleton(100)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Assemble(doc, atlas, NewScene()); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Animation Benchmarks ---

func BenchmarkCompile_100Bones(b *testing.B) {
	tracks := benchTracks(100, 8)
	index := make(IdentityIndex, len(tracks))
	for i, t := range tracks {
		index[BoneName(t.Bone)] = NodeID(i + 1)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(tracks, index, CompileConfig{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdvance_100Bones(b *testing.B) {
	atlas, err := LoadAtlas([]byte(headAtlasJSON))
	if err != nil {
		b.Fatal(err)
	}
	s := NewScene()
	asm, err := Assemble(benchSkeleton(100), atlas, s)
	if err != nil {
		b.Fatal(err)
	}
	prog, err := Compile(benchTracks(100, 8), asm.Index, CompileConfig{})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if s.NumPlaying() == 0 {
			if err := Run(prog, s); err != nil {
				b.Fatal(err)
			}
		}
		s.Advance(1.0 / 60)
	}
}

func BenchmarkCompositionSample(b *testing.B) {
	comp := compileTrack(benchTracks(1, 16)[0], DefaultFrameRate)
	d := comp.Duration()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		comp.Sample(float64(i%100) / 100 * d)
	}
}
