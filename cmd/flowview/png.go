package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/axisflow/pkg/debug"
	"github.com/grindlemire/axisflow/render"
)

// runPNG implements the png subcommand. Scenes are independent trees
// writing to independent files, so they render in parallel.
func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ExitOnError)
	width := fs.Float64("w", 0, "constraint width in layout units (0 = 800)")
	height := fs.Float64("h", 0, "constraint height in layout units (0 = unbounded)")
	outDir := fs.String("o", ".", "output directory for images")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cs := constraintsFor(*width, *height, 800)

	scenes, err := loadScenes(fs.Args())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	for _, sc := range scenes {
		sc := sc
		g.Go(func() error {
			out := filepath.Join(*outDir, sc.name+".png")
			if err := render.PNG(sc.container, cs, out); err != nil {
				return fmt.Errorf("%s: %w", sc.name, err)
			}
			debug.Log("rendered %s to %s", sc.name, out)
			fmt.Printf("wrote %s\n", out)
			return nil
		})
	}
	return g.Wait()
}
