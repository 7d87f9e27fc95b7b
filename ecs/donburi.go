package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/overscroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Stretch is the per-entity stretch state.
type Stretch struct {
	// Effect is written by the caller every frame.
	Effect overscroll.Effect
	// Content is the unstretched image of the entity, sized to Effect.
	Content *ebiten.Image
	// X and Y place the content on screen.
	X, Y float64

	// shader is rebuilt by System.Update; nil while there is no effect.
	shader *overscroll.Shader
	active bool
}

// Shader returns the instance built by the last System.Update, or nil.
func (s *Stretch) Shader() *overscroll.Shader { return s.shader }

// Component is the Donburi component type carrying Stretch.
var Component = donburi.NewComponentType[Stretch]()

// SettledEvent reports that an entity's stretch relaxed to no effect.
type SettledEvent struct {
	Entity donburi.Entity
}

// SettledEventType is the Donburi event type for SettledEvent.
var SettledEventType = events.NewEventType[SettledEvent]()

// System builds and draws stretch shaders for every entity with Component.
type System struct {
	factory *overscroll.ShaderFactory
	query   *donburi.Query
	imgOp   ebiten.DrawImageOptions
	op      ebiten.DrawRectShaderOptions
}

// NewSystem creates a system drawing through f. Share f between systems
// so the program is compiled once.
func NewSystem(f *overscroll.ShaderFactory) *System {
	return &System{
		factory: f,
		query:   donburi.NewQuery(filter.Contains(Component)),
	}
}

// Update rebuilds each entity's shader from its current Effect and publishes
// SettledEvent for entities whose effect just went away.
func (s *System) Update(world donburi.World) {
	s.query.Each(world, func(entry *donburi.Entry) {
		st := Component.Get(entry)
		st.shader = s.factory.CreateShader(st.Content, st.Effect)
		wasActive := st.active
		st.active = st.shader != nil
		if wasActive && !st.active {
			SettledEventType.Publish(world, SettledEvent{Entity: entry.Entity()})
		}
	})
}

// Draw renders every entity's content onto screen, stretched when it has an
// effect and copied as is otherwise.
func (s *System) Draw(world donburi.World, screen *ebiten.Image) {
	s.query.Each(world, func(entry *donburi.Entry) {
		st := Component.Get(entry)
		if st.Content == nil {
			return
		}
		if st.shader == nil {
			s.imgOp.GeoM.Reset()
			s.imgOp.GeoM.Translate(st.X, st.Y)
			screen.DrawImage(st.Content, &s.imgOp)
			return
		}
		s.op.GeoM.Reset()
		s.op.GeoM.Translate(st.X, st.Y)
		st.shader.DrawWithOptions(screen, &s.op)
	})
}
