package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/asteroids-ufo/internal/event"
	"github.com/tomz197/asteroids-ufo/internal/loop/config"
	"github.com/tomz197/asteroids-ufo/internal/object"
	"github.com/tomz197/asteroids-ufo/internal/phase"
)

// ExplosionEvent asks for an explosion at Pos.
type ExplosionEvent struct {
	Pos mgl64.Vec2
}

// ScoreEvent credits Delta points to the running score.
type ScoreEvent struct {
	Delta uint32
}

var explosionStyle = object.ExplosionStyle{
	Radius:  config.ExplosionRadius,
	Width:   config.ExplosionWidth,
	Grow:    config.ExplosionGrow,
	Thin:    config.ExplosionThin,
	Fade:    config.ExplosionFade,
	MaxWide: config.ExplosionMaxWidth,
}

func scoreSystem(g *Game, _ float64) {
	for _, ev := range event.Read[ScoreEvent](g.bus) {
		g.board.Add(ev.Delta)
	}
}

func explosionSpawnSystem(g *Game, _ float64) {
	for _, ev := range event.Read[ExplosionEvent](g.bus) {
		g.world.AddExplosion(object.NewExplosion(ev.Pos, explosionStyle))
		g.audio.Explode()
	}
}

// explosionAnimateSystem steps every ring once per tick. Rings spawned this
// tick start animating on the next one.
func explosionAnimateSystem(g *Game, _ float64) {
	g.world.EachExplosion(func(id object.ID, e *object.Explosion) {
		e.Advance(explosionStyle)
		if e.Done() {
			g.world.Despawn(object.Ref{Kind: object.KindExplosion, ID: id})
		}
	})
}

// thrustAudioSystem keeps the engine sound in step with the ship's thrust flag.
func thrustAudioSystem(g *Game, _ float64) {
	on := false
	if s := g.world.Ship(); s != nil && g.machine.Current() == phase.Playing {
		on = s.Thrust
	}
	if on != g.thrusting {
		g.thrusting = on
		g.audio.SetThrust(on)
	}
}
