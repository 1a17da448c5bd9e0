// Package main provides the flowview CLI for inspecting scene layouts.
//
// Usage:
//
//	flowview view [scene.toml...]    Print an ASCII sketch of each scene
//	flowview png [scene.toml...]     Render each scene to a PNG image
//	flowview help                    Show help
//
// Examples:
//
//	flowview view                    Sketch the built-in demo scene
//	flowview view -w 250 nav.toml    Arrange nav.toml under a narrow width
//	flowview png -o out a.toml       Render a scene into out/a.png
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/axisflow"
	"github.com/grindlemire/axisflow/scene"
)

const version = "0.1.0"

const usage = `flowview - arrange and inspect axisflow scenes

Usage:
  flowview <command> [options] [scene.toml...]

Commands:
  view        Print an ASCII sketch of each scene
  png         Render each scene to a PNG image
  version     Print version information
  help        Show this help message

Options:
  -w N        Constraint width in layout units (0 = terminal width)
  -h N        Constraint height in layout units (0 = unbounded)
  -cols N     Sketch width in columns (view only; 0 = terminal width)
  -o DIR      Output directory for images (png only; default ".")

With no scene files, flowview falls back to the built-in demo scene.

Examples:
  flowview view                      Sketch the demo scene
  flowview view dashboard.toml       Sketch a scene file
  flowview view -w 250 nav.toml      Collapse nav.toml under a narrow width
  flowview png -o out a.toml b.toml  Render scenes to out/a.png and out/b.png
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "view":
		if err := runView(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "png":
		if err := runPNG(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("flowview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

type namedScene struct {
	name      string
	container *axisflow.Container
}

// loadScenes builds a container per path, or the built-in demo scene
// when no paths are given.
func loadScenes(paths []string) ([]namedScene, error) {
	if len(paths) == 0 {
		return []namedScene{{name: "demo", container: scene.Default()}}, nil
	}
	scenes := make([]namedScene, 0, len(paths))
	for _, path := range paths {
		c, err := scene.Load(path)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, namedScene{name: sceneName(path), container: c})
	}
	return scenes, nil
}

func sceneName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// constraintsFor maps the zero flags to defaults: width falls back to
// defaultW, height to unbounded.
func constraintsFor(w, h, defaultW float64) axisflow.Constraints {
	maxW, maxH := defaultW, axisflow.Inf
	if w > 0 {
		maxW = w
	}
	if h > 0 {
		maxH = h
	}
	return axisflow.Loose(maxW, maxH)
}
