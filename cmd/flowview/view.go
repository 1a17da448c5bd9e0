package main

import (
	"flag"
	"fmt"

	"github.com/grindlemire/axisflow/pkg/debug"
	"github.com/grindlemire/axisflow/render"
)

// runView implements the view subcommand. It arranges each scene under
// the flag constraints and prints an ASCII sketch with a one line
// summary of the pass.
func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	width := fs.Float64("w", 0, "constraint width in layout units (0 = terminal width)")
	height := fs.Float64("h", 0, "constraint height in layout units (0 = unbounded)")
	cols := fs.Int("cols", 0, "sketch width in columns (0 = terminal width)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	term := terminalCols()
	if *cols <= 0 {
		*cols = term
	}
	cs := constraintsFor(*width, *height, float64(term))

	scenes, err := loadScenes(fs.Args())
	if err != nil {
		return err
	}

	for _, sc := range scenes {
		sketch := render.ASCII(sc.container, cs, *cols)
		axis, _ := sc.container.Axis()
		size := sc.container.Size()

		fmt.Printf("%s: %s %gx%g", sc.name, axis, size.Width, size.Height)
		if sc.container.Overflow() {
			fmt.Print(" overflow")
		}
		fmt.Println()
		fmt.Println(sketch)
		debug.Log("viewed %s as %s under %v", sc.name, axis, cs)
	}
	return nil
}
