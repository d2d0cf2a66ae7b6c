// Package theme loads widget defaults from a YAML file. A theme is a
// partial ringnode.Config: options it leaves out keep the widget defaults
// when applied through Configure.
package theme

import (
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"ring-widget/internal/ringnode"
)

// File is the on-disk theme shape. Colors are "#RGB" or "#RRGGBB".
type File struct {
	Title              string  `yaml:"title,omitempty"`
	TitleColor         string  `yaml:"title_color,omitempty"`
	TitleFontName      string  `yaml:"title_font_name,omitempty"`
	TitleFontSize      float32 `yaml:"title_font_size,omitempty"`
	TitleNumberOfLines int     `yaml:"title_number_of_lines,omitempty"`
	NodeColor          string  `yaml:"node_color,omitempty"`
	RingProgress       float32 `yaml:"ring_progress,omitempty"`
	RingColor          string  `yaml:"ring_color,omitempty"`
	RingThickness      float32 `yaml:"ring_thickness,omitempty"`
	RingAnimationSpeed float32 `yaml:"ring_animation_speed,omitempty"`
}

// Load reads a theme from path and returns it as a partial Config. A
// missing file or invalid YAML returns the zero Config (all defaults) and
// no error, so a host can always apply the result.
func Load(path string) ringnode.Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return ringnode.Config{}
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return ringnode.Config{}
	}
	return f.Config()
}

// Config converts the file form to a partial ringnode.Config. Unparsable
// color strings are left zero (and so skipped by Configure).
func (f File) Config() ringnode.Config {
	cfg := ringnode.Config{
		Title:              f.Title,
		TitleFontName:      f.TitleFontName,
		TitleFontSize:      f.TitleFontSize,
		TitleNumberOfLines: f.TitleNumberOfLines,
		RingProgress:       f.RingProgress,
		RingThickness:      f.RingThickness,
		RingAnimationSpeed: f.RingAnimationSpeed,
	}
	if c, ok := ParseHexColor(f.TitleColor); ok {
		cfg.TitleColor = c
	}
	if c, ok := ParseHexColor(f.NodeColor); ok {
		cfg.NodeColor = c
	}
	if c, ok := ParseHexColor(f.RingColor); ok {
		cfg.RingColor = c
	}
	return cfg
}

// ParseHexColor parses #RGB or #RRGGBB into rl.Color (alpha 255). Returns
// rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r = hexByte(hex[0]) * 17
		g = hexByte(hex[1]) * 17
		b = hexByte(hex[2]) * 17
	case 6:
		r = hexByte(hex[0])<<4 + hexByte(hex[1])
		g = hexByte(hex[2])<<4 + hexByte(hex[3])
		b = hexByte(hex[4])<<4 + hexByte(hex[5])
	default:
		return rl.Black, false
	}
	return rl.NewColor(r, g, b, 255), true
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
