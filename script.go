package overscroll

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptTarget is driven by a Script, typically the demo or a visual test
// harness owning the scroll state.
type ScriptTarget interface {
	// Pull sets the overscroll vector as if the user were holding a drag.
	Pull(v Vec2)
	// Release lets go, starting the relax animation.
	Release()
	// Screenshot captures the current frame under label.
	Screenshot(label string)
}

// Script sequences pulls, releases and screenshots across frames so a
// stretch can be captured at known overscroll values.
//
// Actions: "pull" (x, y, frames to hold), "release" (frames to wait),
// "wait" (frames), "screenshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "pull", "release", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame.
func (s *Script) Step(t ScriptTarget) {
	if s.done {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "pull":
		t.Pull(Vec2{X: st.X, Y: st.Y})
	case "release":
		t.Release()
	case "screenshot":
		t.Screenshot(st.Label)
	}
	if st.Frames > 0 {
		s.waitCount = st.Frames - 1 // this frame counts as one
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
