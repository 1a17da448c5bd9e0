// Package scene loads container trees from TOML scene descriptions.
//
// A scene describes one container and its children:
//
//	[container]
//	primary = "horizontal"
//	spacing = 10
//
//	[[container.children]]
//	label = "nav"
//	width = 100
//	height = 40
//
// String values use the same vocabulary the layout enums print, e.g.
// "space-between" or "prefer-primary". A child nests a whole container
// in place of a box by carrying a container table of its own.
package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/grindlemire/axisflow"
)

// containerConfig mirrors the [container] table.
type containerConfig struct {
	Primary           string        `toml:"primary"`
	Spacing           float64       `toml:"spacing"`
	HorizontalSpacing *float64      `toml:"horizontal_spacing"`
	VerticalSpacing   *float64      `toml:"vertical_spacing"`
	HorizontalJustify string        `toml:"horizontal_justify"`
	VerticalJustify   string        `toml:"vertical_justify"`
	HorizontalAlign   string        `toml:"horizontal_align"`
	VerticalAlign     string        `toml:"vertical_align"`
	TextDirection     string        `toml:"text_direction"`
	VerticalDirection string        `toml:"vertical_direction"`
	Clip              string        `toml:"clip"`
	Maintain          bool          `toml:"maintain"`
	Strategy          string        `toml:"strategy"`
	Children          []childConfig `toml:"children"`
}

// childConfig is one [[children]] entry: a sized box, or a nested
// container.
type childConfig struct {
	Label     string  `toml:"label"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	MinWidth  float64 `toml:"min_width"`
	MinHeight float64 `toml:"min_height"`

	Container *containerConfig `toml:"container"`
}

type sceneConfig struct {
	Container containerConfig `toml:"container"`
}

// Load reads and builds the scene at path.
func Load(path string) (*axisflow.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds the scene described by the given TOML document.
func Parse(data []byte) (*axisflow.Container, error) {
	var cfg sceneConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg.Container.build()
}

// Default returns the canonical demo scene: a spaced row of three
// labeled boxes that collapses to a column below 320 units of width.
func Default() *axisflow.Container {
	c, err := axisflow.New(
		axisflow.WithSpacing(10),
		axisflow.WithChildren(
			axisflow.NewBox(axisflow.WithSize(100, 40), axisflow.WithLabel("nav")),
			axisflow.NewBox(axisflow.WithSize(100, 40), axisflow.WithLabel("main")),
			axisflow.NewBox(axisflow.WithSize(100, 40), axisflow.WithLabel("aside")),
		),
	)
	if err != nil {
		// The options above are statically valid.
		panic(err)
	}
	return c
}

// build converts the configuration into a container tree.
func (cfg containerConfig) build() (*axisflow.Container, error) {
	primary, err := parseAxis(cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	hj, err := parseJustify(cfg.HorizontalJustify)
	if err != nil {
		return nil, fmt.Errorf("horizontal_justify: %w", err)
	}
	vj, err := parseJustify(cfg.VerticalJustify)
	if err != nil {
		return nil, fmt.Errorf("vertical_justify: %w", err)
	}
	ha, err := parseAlign(cfg.HorizontalAlign)
	if err != nil {
		return nil, fmt.Errorf("horizontal_align: %w", err)
	}
	va, err := parseAlign(cfg.VerticalAlign)
	if err != nil {
		return nil, fmt.Errorf("vertical_align: %w", err)
	}
	vd, err := parseVerticalDirection(cfg.VerticalDirection)
	if err != nil {
		return nil, fmt.Errorf("vertical_direction: %w", err)
	}
	clip, err := parseClip(cfg.Clip)
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	strategy, err := parseStrategy(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("strategy: %w", err)
	}

	opts := []axisflow.Option{
		axisflow.WithPrimary(primary),
		axisflow.WithSpacing(cfg.Spacing),
		axisflow.WithJustify(axisflow.Horizontal, hj),
		axisflow.WithJustify(axisflow.Vertical, vj),
		axisflow.WithCrossAlign(axisflow.Horizontal, ha),
		axisflow.WithCrossAlign(axisflow.Vertical, va),
		axisflow.WithVerticalDirection(vd),
		axisflow.WithClip(clip),
		axisflow.WithMaintain(cfg.Maintain),
		axisflow.WithStrategy(strategy),
	}
	if cfg.HorizontalSpacing != nil {
		opts = append(opts, axisflow.WithHorizontalSpacing(*cfg.HorizontalSpacing))
	}
	if cfg.VerticalSpacing != nil {
		opts = append(opts, axisflow.WithVerticalSpacing(*cfg.VerticalSpacing))
	}
	// An absent direction leaves the container on the package ambient.
	if cfg.TextDirection != "" {
		dir, err := parseTextDirection(cfg.TextDirection)
		if err != nil {
			return nil, fmt.Errorf("text_direction: %w", err)
		}
		opts = append(opts, axisflow.WithTextDirection(dir))
	}

	items := make([]axisflow.Item, 0, len(cfg.Children))
	for i, child := range cfg.Children {
		item, err := child.build()
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		items = append(items, item)
	}
	opts = append(opts, axisflow.WithChildren(items...))

	return axisflow.New(opts...)
}

func (cfg childConfig) build() (axisflow.Item, error) {
	if cfg.Container != nil {
		if cfg.Width != 0 || cfg.Height != 0 {
			return nil, fmt.Errorf("a child is either a sized box or a nested container, not both")
		}
		return cfg.Container.build()
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("box size must be non-negative, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.MinWidth < 0 || cfg.MinHeight < 0 {
		return nil, fmt.Errorf("box min size must be non-negative, got %vx%v", cfg.MinWidth, cfg.MinHeight)
	}

	boxOpts := []axisflow.BoxOption{axisflow.WithSize(cfg.Width, cfg.Height)}
	if cfg.MinWidth > 0 || cfg.MinHeight > 0 {
		boxOpts = append(boxOpts, axisflow.WithMinSize(cfg.MinWidth, cfg.MinHeight))
	}
	if cfg.Label != "" {
		boxOpts = append(boxOpts, axisflow.WithLabel(cfg.Label))
	}
	return axisflow.NewBox(boxOpts...), nil
}

func parseAxis(s string) (axisflow.Axis, error) {
	switch s {
	case "", "horizontal":
		return axisflow.Horizontal, nil
	case "vertical":
		return axisflow.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}

func parseJustify(s string) (axisflow.Justify, error) {
	switch s {
	case "", "start":
		return axisflow.JustifyStart, nil
	case "end":
		return axisflow.JustifyEnd, nil
	case "center":
		return axisflow.JustifyCenter, nil
	case "space-between":
		return axisflow.JustifySpaceBetween, nil
	case "space-around":
		return axisflow.JustifySpaceAround, nil
	case "space-evenly":
		return axisflow.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify %q", s)
	}
}

func parseAlign(s string) (axisflow.Align, error) {
	switch s {
	case "", "start":
		return axisflow.AlignStart, nil
	case "end":
		return axisflow.AlignEnd, nil
	case "center":
		return axisflow.AlignCenter, nil
	default:
		return 0, fmt.Errorf("unknown align %q", s)
	}
}

func parseTextDirection(s string) (axisflow.TextDirection, error) {
	switch s {
	case "ltr":
		return axisflow.LTR, nil
	case "rtl":
		return axisflow.RTL, nil
	default:
		return 0, fmt.Errorf("unknown text direction %q", s)
	}
}

func parseVerticalDirection(s string) (axisflow.VerticalDirection, error) {
	switch s {
	case "", "down":
		return axisflow.Down, nil
	case "up":
		return axisflow.Up, nil
	default:
		return 0, fmt.Errorf("unknown vertical direction %q", s)
	}
}

func parseClip(s string) (axisflow.Clip, error) {
	switch s {
	case "", "none":
		return axisflow.ClipNone, nil
	case "hard-edge":
		return axisflow.ClipHardEdge, nil
	case "anti-alias":
		return axisflow.ClipAntiAlias, nil
	default:
		return 0, fmt.Errorf("unknown clip %q", s)
	}
}

func parseStrategy(s string) (axisflow.Strategy, error) {
	switch s {
	case "", "layout":
		return axisflow.StrategyLayout, nil
	case "intrinsic":
		return axisflow.StrategyIntrinsic, nil
	case "prefer-primary":
		return axisflow.StrategyPreferPrimary, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}
