package options

import "testing"

func TestDefaults(t *testing.T) {
	opts := Default()
	if opts.Width != 800 || opts.Height != 500 {
		t.Fatalf("expected 800x500 window, got %dx%d", opts.Width, opts.Height)
	}
	if opts.Backend != "sdl" {
		t.Fatalf("expected sdl backend, got %q", opts.Backend)
	}
	if opts.VertexPath == "" || opts.FragmentPath == "" {
		t.Fatal("expected default shader source paths")
	}
	want := [4]float32{0.1, 0.1, 0.1, 1.0}
	if opts.ClearColor != want {
		t.Fatalf("expected clear color %v, got %v", want, opts.ClearColor)
	}
}
