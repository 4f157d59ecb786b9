package prefabs

import (
	"fmt"
	"image/color"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Composite types understood by the scene builder.
const (
	CompositeLine  = "line"
	CompositeTire  = "tire"
	CompositeCloth = "cloth"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name            string          `yaml:"name"`
	Width           float64         `yaml:"width"`
	Height          float64         `yaml:"height"`
	Gravity         *Vec2Spec       `yaml:"gravity"`
	Friction        *float64        `yaml:"friction"`
	SelectionRadius *float64        `yaml:"selection_radius"`
	Substeps        int             `yaml:"substeps"`
	Palette         PaletteSpec     `yaml:"palette"`
	Composites      []CompositeSpec `yaml:"composites"`
}

// LoadSceneSpec loads a scene by name; the .yaml extension is optional.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	if path.Ext(name) == "" {
		name += ".yaml"
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = SceneName(name)
	}
	return &spec, nil
}

// SceneName reduces a scene path such as "prefabs/shapes.yaml" to the bare
// name "shapes".
func SceneName(name string) string {
	base := path.Base(filepath.ToSlash(name))
	switch strings.ToLower(path.Ext(base)) {
	case ".yaml", ".yml":
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return base
}

func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	return &spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PaletteSpec struct {
	Particle        *YAMLColor `yaml:"particle"`
	Constraint      *YAMLColor `yaml:"constraint"`
	Highlight       *YAMLColor `yaml:"highlight"`
	Pin             *YAMLColor `yaml:"pin"`
	ShowPins        bool       `yaml:"show_pins"`
	ParticleRadius  float64    `yaml:"particle_radius"`
	HighlightRadius float64    `yaml:"highlight_radius"`
	LineWidth       float32    `yaml:"line_width"`
}

type CompositeSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// line, cloth
	Stiffness float64    `yaml:"stiffness"`
	Vertices  []Vec2Spec `yaml:"vertices"`

	// tire, cloth
	Center   Vec2Spec `yaml:"center"`
	Segments int      `yaml:"segments"`

	// tire
	Radius         float64 `yaml:"radius"`
	SpokeStiffness float64 `yaml:"spoke_stiffness"`
	TreadStiffness float64 `yaml:"tread_stiffness"`
	Brace          int     `yaml:"brace"`

	// cloth
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	PinEvery int     `yaml:"pin_every"`

	Pins []PinSpec `yaml:"pins"`
}

// PinSpec anchors particle Index. Without At the particle's own position is
// used. Script names a tengo file under scripts/ that moves the anchor.
type PinSpec struct {
	Index  int       `yaml:"index"`
	At     *Vec2Spec `yaml:"at"`
	Script string    `yaml:"script"`
}

// YAMLColor decodes "#rrggbb", "#rrggbbaa" or an SVG colour name such as
// "lightgrey".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
