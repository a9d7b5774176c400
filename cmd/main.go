package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	glfwcontext "github.com/skels/gltriangle/glfwcontext"
	graphics "github.com/skels/gltriangle/graphics"
	options "github.com/skels/gltriangle/options"
	renderer "github.com/skels/gltriangle/renderer"
	sdlcontext "github.com/skels/gltriangle/sdlcontext"
	shader "github.com/skels/gltriangle/shader"
)

func init() {
	// The GL context is bound to the main OS thread.
	runtime.LockOSThread()
}

func main() {
	opts := options.Default()
	flag.IntVar(&opts.Width, "width", opts.Width, "window width in pixels")
	flag.IntVar(&opts.Height, "height", opts.Height, "window height in pixels")
	flag.StringVar(&opts.Title, "title", opts.Title, "window title")
	flag.StringVar(&opts.VertexPath, "vert", opts.VertexPath, "vertex shader source file")
	flag.StringVar(&opts.FragmentPath, "frag", opts.FragmentPath, "fragment shader source file")
	flag.StringVar(&opts.Backend, "backend", opts.Backend, "windowing backend (sdl or glfw)")
	flag.Parse()

	sources, err := shader.Load(opts.VertexPath, opts.FragmentPath)
	if err != nil {
		log.Fatalf("Failed to load shader sources: %v", err)
	}

	ctx, err := newContext(opts)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer ctx.Shutdown()

	if err := ctx.MakeCurrent(); err != nil {
		log.Fatalf("Failed to make GL context current: %v", err)
	}

	width, height := ctx.DrawableSize()
	scene, err := renderer.NewTriangleScene(sources, width, height, opts.ClearColor)
	if err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}
	defer scene.Destroy()

	log.Println("Starting render loop...")
	renderer.NewLoop(ctx, scene).Run()
}

func newContext(opts options.Options) (graphics.Context, error) {
	switch opts.Backend {
	case "sdl":
		return sdlcontext.New(opts.Width, opts.Height, opts.Title)
	case "glfw":
		return glfwcontext.New(opts.Width, opts.Height, opts.Title)
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
}
