package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/export"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/df07/go-sphere-tracer/pkg/viewer"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "png", "Output format when -output is not set: png, bmp or tiff")
	workers := flag.Int("workers", 0, "Render workers: 0 sequential, -1 one per CPU")
	cullBehind := flag.Bool("cull-behind", false, "Ignore sphere hits behind the camera")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (0 keeps the scene default)")
	window := flag.Bool("window", false, "Open an interactive window instead of saving an image")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *width <= 0 || *height <= 0 {
		fmt.Printf("Error: image size must be positive, got %dx%d\n", *width, *height)
		os.Exit(1)
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if *fov > 0 {
		selectedScene.CameraConfig.VerticalFOV = float32(*fov)
	}

	config := renderer.DefaultConfig()
	config.NumWorkers = *workers
	config.CullBehindOrigin = *cullBehind
	raytracer := renderer.NewRaytracer(config)

	if *window {
		viewerConfig := viewer.DefaultConfig()
		viewerConfig.Width, viewerConfig.Height = *width, *height
		if err := viewer.New(selectedScene, raytracer, viewerConfig).Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	filename := *output
	if filename == "" {
		imageFormat, err := export.ParseFormat(*format)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		filename = defaultOutputPath(*sceneType, imageFormat, time.Now())
	}

	fmt.Printf("Rendering scene '%s' (%d spheres) at %dx%d...\n",
		*sceneType, selectedScene.Len(), *width, *height)

	buffer := renderer.NewImageBuffer(*width, *height)
	camera := renderer.NewCamera(selectedScene.CameraConfig)
	camera.Resize(*width, *height)
	stats := raytracer.Render(selectedScene, camera, buffer)

	fmt.Printf("Render completed in %.3fms\n", stats.Milliseconds())
	fmt.Printf("Sphere coverage: %.1f%% (%d of %d pixels)\n",
		stats.Coverage()*100, stats.HitPixels, stats.TotalPixels)

	if err := export.Save(filename, buffer.ToRGBA()); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("Sphere Tracer")
	fmt.Println("Usage: sphere-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Without -window, output is saved to output/<scene>/render_<timestamp>.<format>")
}

// createScene builds the named built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Create(sceneType)
}

// parseLogLevel maps a -log-level value to a slog level
func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.<ext>
func defaultOutputPath(sceneType string, format export.Format, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s%s", timestamp, format.Extension()))
}
