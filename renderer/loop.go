package renderer

import (
	"log"
	"time"

	graphics "github.com/skels/gltriangle/graphics"
)

// Loop runs the per-tick render cycle: drain input, draw one frame,
// present, then hold the fixed 60 Hz pace.
type Loop struct {
	ctx   graphics.Context
	scene Scene
	pace  time.Duration
}

func NewLoop(ctx graphics.Context, scene Scene) *Loop {
	return &Loop{ctx: ctx, scene: scene, pace: time.Second / 60}
}

// Run ticks until a quit event arrives, then returns so the caller can
// tear down in order.
func (l *Loop) Run() {
	for l.Tick() {
		time.Sleep(l.pace)
	}
}

// Tick drains every pending event, then renders exactly one frame
// regardless of how many events were observed. It reports false as soon
// as a quit event is seen; remaining events and the frame for that tick
// are skipped.
func (l *Loop) Tick() bool {
	for _, ev := range l.ctx.Drain() {
		if ev.Kind == graphics.EventQuit {
			log.Printf("Quit requested (event timestamp %dms)", ev.Timestamp)
			return false
		}
	}
	l.scene.Draw()
	l.ctx.EndFrame()
	return true
}
