package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/photonlab/go-photon-tracer/pkg/core"
	"github.com/photonlab/go-photon-tracer/pkg/imaging"
	"github.com/photonlab/go-photon-tracer/pkg/loaders"
	"github.com/photonlab/go-photon-tracer/pkg/renderer"
	"github.com/photonlab/go-photon-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneID string
	width   int
	height  int
	scale   float64
	workers int
	tile    int
	depth   int
	epsilon float64
	frames  int
	output  string
	texture string
	maxTex  int
	list    bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	defaults := core.DefaultTraceConfig()

	fs := flag.NewFlagSet("photon-tracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sceneID, "scene", "cornell-box", "Built-in scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 400, "Base image width in pixels")
	fs.IntVar(&opts.height, "height", 300, "Base image height in pixels")
	fs.Float64Var(&opts.scale, "scale", 1, "Resolution scale applied to width and height")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.tile, "tile", renderer.DefaultTracerConfig().TileSize, "Tile size in pixels")
	fs.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum recursion depth for reflection and refraction")
	fs.Float64Var(&opts.epsilon, "epsilon", defaults.Epsilon, "Surface offset for shadow and secondary rays")
	fs.IntVar(&opts.frames, "frames", 1, "Number of animation frames to render")
	fs.StringVar(&opts.output, "output", "output/render.png", "Output PNG path; frames get a numeric suffix")
	fs.StringVar(&opts.texture, "floor-texture", "", "Optional image file (PNG, JPEG, BMP, TIFF, WebP) applied to the floor")
	fs.IntVar(&opts.maxTex, "texture-size", 1024, "Largest texture dimension; bigger images are downscaled")
	fs.BoolVar(&opts.list, "list", false, "List built-in scenes and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch {
	case opts.width <= 0 || opts.height <= 0:
		return opts, fmt.Errorf("width and height must be positive, got %dx%d", opts.width, opts.height)
	case opts.depth < 0:
		return opts, fmt.Errorf("depth must not be negative, got %d", opts.depth)
	case opts.epsilon <= 0:
		return opts, fmt.Errorf("epsilon must be positive, got %v", opts.epsilon)
	case opts.frames < 1:
		return opts, fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}
	return opts, nil
}

// run renders the requested frames and returns the written files
func run(opts options, stdout io.Writer, logger core.Logger) ([]string, error) {
	if opts.list {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "  %-16s %s\n", info.ID, info.Description)
		}
		return nil, nil
	}

	s, err := scene.NewByName(opts.sceneID, float64(opts.width)/float64(opts.height))
	if err != nil {
		return nil, err
	}
	if opts.texture != "" {
		texture, err := loaders.LoadTexture(opts.texture, loaders.TextureOptions{MaxSize: opts.maxTex})
		if err != nil {
			return nil, err
		}
		if err := s.SetFloorTexture(texture); err != nil {
			return nil, fmt.Errorf("scene %s: %w", opts.sceneID, err)
		}
		logger.Printf("Floor texture %s (%dx%d)\n", opts.texture, texture.Width, texture.Height)
	}

	s.TraceConfig = core.TraceConfig{
		MaxDepth: opts.depth,
		Epsilon:  opts.epsilon,
	}

	tracer := renderer.NewTracer(opts.width, opts.height, renderer.TracerConfig{
		NumWorkers: opts.workers,
		TileSize:   opts.tile,
	}, logger)

	var written []string
	for frame := 0; frame < opts.frames; frame++ {
		s.Advance(frame)

		if err := tracer.BeginTrace(s, opts.scale); err != nil {
			return written, fmt.Errorf("frame %d: %w", frame, err)
		}
		_, err := tracer.PerformTrace()
		tracer.End()
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", frame, err)
		}

		width, height := tracer.Resolution()
		img, err := imaging.ToImage(tracer.Radiance(), width, height)
		if err != nil {
			return written, fmt.Errorf("frame %d: %w", frame, err)
		}

		filename := imaging.FrameFilename(opts.output, frame, opts.frames)
		if err := imaging.SavePNG(img, filename); err != nil {
			return written, fmt.Errorf("frame %d: %w", frame, err)
		}
		logger.Printf("Frame %d saved as %s\n", frame, filename)
		written = append(written, filename)
	}

	return written, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if _, err := run(opts, os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
