package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phanxgames/armature"
	"github.com/scott-cotton/cli"
)

func TestWriteTree(t *testing.T) {
	scene := armature.NewScene()
	root := armature.NewContainer("root")
	root.SetPosition(1, 2)
	neck := armature.NewContainer("neck")
	neck.SetPosition(3, 0)
	neck.SetRotation(math.Pi / 2)
	head := armature.NewSprite("headSlot", armature.TextureRegion{Name: "head", Width: 32, Height: 32})
	head.SetPosition(10, 20)
	head.SetPivot(16, 16)
	root.AddChild(head)
	root.AddChild(neck)
	scene.InsertRoot(root)
	scene.RefreshTransforms()

	var buf bytes.Buffer
	writeTree(&buf, root, plainColors())
	want := "bone root pos=(1,2) rot=0 world=(1,2)\n" +
		"  slot headSlot region=head 32x32 pos=(10,20) rot=0\n" +
		"  bone neck pos=(3,0) rot=1.571 world=(4,2)\n" +
		"bounds (-5,6) 32x32\n"
	if got := buf.String(); got != want {
		t.Errorf("writeTree:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteProgram(t *testing.T) {
	tracks := []armature.BoneTrack{{
		Bone: "neck",
		Translate: []armature.TranslateFrame{
			{Duration: 10, Value: mgl64.Vec2{0, 0}},
			{Duration: 10, Value: mgl64.Vec2{5, 0}},
		},
	}}
	index := armature.IdentityIndex{armature.BoneName("neck"): 3}
	p, err := armature.Compile(tracks, index, armature.CompileConfig{FrameRate: 5})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf bytes.Buffer
	writeProgram(&buf, p)
	out := buf.String()
	for _, want := range []string{
		"1 bones, 2.000s\n",
		"bone:neck (node 3) 2.000s\n",
		"  translate: 1 segments\n",
		"    0: 2.000s move (5, 0)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadUsage(t *testing.T) {
	if _, err := load("", []string{"testdata"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("err = %v, want cli.ErrUsage", err)
	}
}

func TestLoadAndSample(t *testing.T) {
	l, err := load("testdata/hero.yaml", []string{"testdata", "hero"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.cfg.FrameRate != 10 || l.cfg.Animation != "idle" {
		t.Errorf("cfg = %+v", l.cfg)
	}
	if err := l.instance.Play(l.scene); err != nil {
		t.Fatalf("Play: %v", err)
	}
	// At 10 fps the idle clip lasts two seconds.
	advance(l.scene, 2100)

	var buf bytes.Buffer
	if err := writePoses(&buf, l.scene, l.instance.Program, 2100); err != nil {
		t.Fatalf("writePoses: %v", err)
	}
	want := "t=2100ms\nbone:neck pos=(6.000,7.000) rot=2.3562 done\n"
	if got := buf.String(); got != want {
		t.Errorf("writePoses = %q, want %q", got, want)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	if _, err := load("testdata/nope.yaml", []string{"testdata", "hero"}); err == nil {
		t.Error("expected error for missing config")
	}
}
