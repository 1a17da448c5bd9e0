package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/axisflow"
)

func TestParse_BuildsArrangeableContainer(t *testing.T) {
	doc := `
[container]
primary = "horizontal"
spacing = 10

[[container.children]]
label = "nav"
width = 100
height = 40

[[container.children]]
label = "main"
width = 100
height = 40

[[container.children]]
label = "aside"
width = 100
height = 40
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	size := c.Layout(axisflow.Loose(350, 200))
	if size != (axisflow.Size{Width: 320, Height: 40}) {
		t.Errorf("wide layout = %v, want {320 40}", size)
	}
	if axis, _ := c.Axis(); axis != axisflow.Horizontal {
		t.Errorf("wide axis = %s, want horizontal", axis)
	}

	size = c.Layout(axisflow.Loose(250, 200))
	if size != (axisflow.Size{Width: 100, Height: 140}) {
		t.Errorf("narrow layout = %v, want {100 140}", size)
	}
	if axis, _ := c.Axis(); axis != axisflow.Vertical {
		t.Errorf("narrow axis = %s, want vertical", axis)
	}
}

func TestParse_AllOptionKeys(t *testing.T) {
	doc := `
[container]
primary = "vertical"
spacing = 4
horizontal_spacing = 6
vertical_spacing = 8
horizontal_justify = "space-between"
vertical_justify = "center"
horizontal_align = "end"
vertical_align = "center"
text_direction = "rtl"
vertical_direction = "up"
clip = "hard-edge"
maintain = true
strategy = "intrinsic"
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	opts := c.Options()
	if opts.Primary != axisflow.Vertical {
		t.Errorf("Primary = %s, want vertical", opts.Primary)
	}
	if opts.Spacing != 4 {
		t.Errorf("Spacing = %v, want 4", opts.Spacing)
	}
	if opts.HorizontalSpacing == nil || *opts.HorizontalSpacing != 6 {
		t.Errorf("HorizontalSpacing = %v, want 6", opts.HorizontalSpacing)
	}
	if opts.VerticalSpacing == nil || *opts.VerticalSpacing != 8 {
		t.Errorf("VerticalSpacing = %v, want 8", opts.VerticalSpacing)
	}
	if opts.HorizontalJustify != axisflow.JustifySpaceBetween {
		t.Errorf("HorizontalJustify = %s, want space-between", opts.HorizontalJustify)
	}
	if opts.VerticalJustify != axisflow.JustifyCenter {
		t.Errorf("VerticalJustify = %s, want center", opts.VerticalJustify)
	}
	if opts.HorizontalAlign != axisflow.AlignEnd {
		t.Errorf("HorizontalAlign = %s, want end", opts.HorizontalAlign)
	}
	if opts.VerticalAlign != axisflow.AlignCenter {
		t.Errorf("VerticalAlign = %s, want center", opts.VerticalAlign)
	}
	if opts.TextDirection != axisflow.RTL {
		t.Errorf("TextDirection = %s, want rtl", opts.TextDirection)
	}
	if opts.VerticalDirection != axisflow.Up {
		t.Errorf("VerticalDirection = %s, want up", opts.VerticalDirection)
	}
	if opts.Clip != axisflow.ClipHardEdge {
		t.Errorf("Clip = %s, want hard-edge", opts.Clip)
	}
	if !opts.Maintain {
		t.Error("Maintain = false, want true")
	}
	if opts.Strategy != axisflow.StrategyIntrinsic {
		t.Errorf("Strategy = %s, want intrinsic", opts.Strategy)
	}
}

func TestParse_NestedContainers(t *testing.T) {
	doc := `
[container]
spacing = 8

[[container.children]]
[container.children.container]
primary = "vertical"
strategy = "prefer-primary"

[[container.children.container.children]]
label = "top"
width = 120
height = 30

[[container.children.container.children]]
label = "bottom"
width = 120
height = 30

[[container.children]]
label = "content"
width = 200
height = 100
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	nav, ok := c.At(0).(*axisflow.Container)
	if !ok {
		t.Fatalf("child 0 is %T, want *axisflow.Container", c.At(0))
	}
	if nav.Len() != 2 {
		t.Errorf("nested Len() = %d, want 2", nav.Len())
	}

	size := c.Layout(axisflow.Loose(400, 300))
	if size != (axisflow.Size{Width: 328, Height: 100}) {
		t.Errorf("layout = %v, want {328 100}", size)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"malformed toml":   "[container\n",
		"unknown axis":     "[container]\nprimary = \"diagonal\"\n",
		"unknown justify":  "[container]\nhorizontal_justify = \"stretch\"\n",
		"unknown align":    "[container]\nvertical_align = \"baseline\"\n",
		"unknown clip":     "[container]\nclip = \"fade\"\n",
		"unknown strategy": "[container]\nstrategy = \"guess\"\n",
		"negative spacing": "[container]\nspacing = -2\n",
		"negative box": `
[container]
[[container.children]]
width = -5
height = 10
`,
		"box and container": `
[container]
[[container.children]]
width = 10
height = 10
[container.children.container]
primary = "vertical"
`,
		"bad nested child": `
[container]
[[container.children]]
[container.children.container]
[[container.children.container.children]]
width = -1
height = 1
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Error("Parse accepted an invalid scene")
			}
		})
	}
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	doc := `
[container]
spacing = 5

[[container.children]]
label = "only"
width = 50
height = 20
`
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestDefault_CollapsesBelowThreshold(t *testing.T) {
	c := Default()

	c.Layout(axisflow.Loose(350, 200))
	if axis, _ := c.Axis(); axis != axisflow.Horizontal {
		t.Errorf("wide axis = %s, want horizontal", axis)
	}

	c.Layout(axisflow.Loose(250, 200))
	if axis, _ := c.Axis(); axis != axisflow.Vertical {
		t.Errorf("narrow axis = %s, want vertical", axis)
	}
}
