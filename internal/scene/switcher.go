package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/meshease/internal/animation"
)

// Switcher makes exactly one target visible and publishes its constants
// into the shared uniforms.
type Switcher struct {
	scene    *Scene
	uniforms *animation.Uniforms
	log      *zap.Logger
	active   animation.MeshKind
}

// NewSwitcher creates a switcher over scene with initial as the active kind.
func NewSwitcher(scene *Scene, uniforms *animation.Uniforms, initial animation.MeshKind, log *zap.Logger) *Switcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Switcher{scene: scene, uniforms: uniforms, log: log, active: initial}
}

// Active returns the selected kind.
func (s *Switcher) Active() animation.MeshKind {
	return s.active
}

// Switch selects kind. Before both targets are registered only the choice
// is recorded; Apply publishes it later. Switching to the active kind again
// leaves visibility and uniforms unchanged.
func (s *Switcher) Switch(kind animation.MeshKind) {
	if kind != s.active {
		s.log.Debug("switching mesh", zap.Stringer("from", s.active), zap.Stringer("to", kind))
	}
	s.active = kind
	s.Apply()
}

// Apply publishes the active kind: its parts become visible, every other
// part is hidden and its constants are copied into the uniforms. It does
// nothing until the scene holds both targets.
func (s *Switcher) Apply() {
	if s.scene.Monkey == nil || s.scene.Helix == nil {
		return
	}
	for _, t := range []*Target{s.scene.Monkey, s.scene.Helix} {
		visible := t.Kind == s.active
		for _, p := range t.Parts {
			p.Visible = visible
		}
	}
	t := s.scene.Target(s.active)
	if t == nil {
		return
	}
	s.uniforms.Period = t.Period
	s.uniforms.YScale = t.YScale
	s.uniforms.MaxY = t.MaxY
}
