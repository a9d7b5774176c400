package renderer

import (
	"testing"

	graphics "github.com/skels/gltriangle/graphics"
)

// fakeContext hands out one scripted event batch per Drain call and counts
// presents.
type fakeContext struct {
	ticks    [][]graphics.Event
	drains   int
	presents int
}

func (c *fakeContext) MakeCurrent() error { return nil }

func (c *fakeContext) Drain() []graphics.Event {
	var events []graphics.Event
	if c.drains < len(c.ticks) {
		events = c.ticks[c.drains]
	}
	c.drains++
	return events
}

func (c *fakeContext) EndFrame()                { c.presents++ }
func (c *fakeContext) DrawableSize() (int, int) { return 800, 500 }
func (c *fakeContext) Shutdown()                {}

type fakeScene struct {
	draws int
}

func (s *fakeScene) Draw()    { s.draws++ }
func (s *fakeScene) Destroy() {}

func other() graphics.Event {
	return graphics.Event{Kind: graphics.EventOther}
}

func quit() graphics.Event {
	return graphics.Event{Kind: graphics.EventQuit, Timestamp: 42}
}

func TestTickRendersOnceRegardlessOfEventCount(t *testing.T) {
	for _, events := range [][]graphics.Event{
		nil,
		{other()},
		{other(), other(), other()},
	} {
		ctx := &fakeContext{ticks: [][]graphics.Event{events}}
		scene := &fakeScene{}
		loop := NewLoop(ctx, scene)

		if !loop.Tick() {
			t.Fatalf("expected tick with %d non-quit events to keep running", len(events))
		}
		if scene.draws != 1 {
			t.Fatalf("expected 1 draw, got %d", scene.draws)
		}
		if ctx.presents != 1 {
			t.Fatalf("expected 1 present, got %d", ctx.presents)
		}
	}
}

func TestQuitStopsBeforeDraw(t *testing.T) {
	ctx := &fakeContext{ticks: [][]graphics.Event{
		{other(), quit(), other()},
	}}
	scene := &fakeScene{}
	loop := NewLoop(ctx, scene)

	if loop.Tick() {
		t.Fatal("expected tick to report terminated on quit")
	}
	if scene.draws != 0 {
		t.Fatalf("expected no draw after quit, got %d", scene.draws)
	}
	if ctx.presents != 0 {
		t.Fatalf("expected no present after quit, got %d", ctx.presents)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	ctx := &fakeContext{ticks: [][]graphics.Event{
		{other()},
		nil,
		{quit()},
	}}
	scene := &fakeScene{}
	loop := NewLoop(ctx, scene)
	loop.pace = 0

	loop.Run()

	if scene.draws != 2 {
		t.Fatalf("expected 2 draws before quit, got %d", scene.draws)
	}
	if ctx.drains != 3 {
		t.Fatalf("expected 3 drains, got %d", ctx.drains)
	}
}
