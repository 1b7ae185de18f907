package armature

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		buf.ReadFrom(r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = oldStderr
	return <-done
}

// ---- Debug mode tests ------------------------------------------------------

func TestSceneSetDebugModeSetsGlobal(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("SetDebugMode(true) should enable scene and global debug")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("SetDebugMode(false) should disable scene and global debug")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		// Build a chain deeper than debugMaxTreeDepth (32).
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})

	if !strings.Contains(output, "[armature] warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		parent := NewContainer("many_children")
		s.InsertRoot(parent)
		for i := 0; i < debugMaxChildCount+1; i++ {
			child := NewContainer(fmt.Sprintf("c_%d", i))
			parent.AddChild(child)
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestReleaseMode_NoWarnings(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	output := captureStderr(t, func() {
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer("deep")
			current.AddChild(child)
			current = child
		}
	})
	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}

func TestDebugMode_AdvanceLogsStats(t *testing.T) {
	s := NewScene()
	n := NewContainer("bone")
	id := s.InsertRoot(n)
	comp := &Composition{Channels: []Channel{{
		Kind:     ChannelRotate,
		Segments: []Segment{{Duration: 1, Rotate: 1, Ease: segmentEase}},
	}}}
	if err := s.RunComposition(id, comp); err != nil {
		t.Fatalf("RunComposition: %v", err)
	}

	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	output := captureStderr(t, func() {
		s.Advance(0.5)
	})
	if !strings.Contains(output, "[armature] step:") || !strings.Contains(output, "players: 1") {
		t.Errorf("expected tick stats in stderr, got: %q", output)
	}
}

func TestDebugf_GatedByDebugMode(t *testing.T) {
	globalDebug = false
	if out := captureStderr(t, func() { debugf("hidden %d", 1) }); out != "" {
		t.Errorf("debugf wrote %q with debug off", out)
	}
	globalDebug = true
	defer func() { globalDebug = false }()
	if out := captureStderr(t, func() { debugf("shown %d", 2) }); out != "[armature] shown 2\n" {
		t.Errorf("debugf wrote %q, want %q", out, "[armature] shown 2\n")
	}
}

func TestWarnf_AlwaysOn(t *testing.T) {
	globalDebug = false
	out := captureStderr(t, func() { warnf("node %d missing", 3) })
	if out != "[armature] warning: node 3 missing\n" {
		t.Errorf("warnf wrote %q", out)
	}
}
