// Package config defines the settings of the svgpathgen command,
// stored as TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// Procedure controls the generated drawing code.
type Procedure struct {
	// Name of the generated function
	Name string `toml:"name"`
	// PathType is the type of the path variable
	PathType string `toml:"path_type"`
	// Variable is the name of the path variable
	Variable string `toml:"variable"`
}

// Export controls the byte array literal.
type Export struct {
	// Name prefixes the array name (<name>PathData)
	Name string `toml:"name"`
}

// Preview controls the PNG and PDF renderings.
type Preview struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Margin around the geometry, in pixels (or PDF units)
	Margin float64 `toml:"margin"`

	// Scale, if positive, disables the fitting to the image
	Scale float64 `toml:"scale"`

	// Colors are SVG color names, #rgb or #rrggbb,
	// "none" disables the corresponding paint.
	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Background  string  `toml:"background"`
}

// Config is the whole configuration file.
type Config struct {
	Procedure Procedure `toml:"procedure"`
	Export    Export    `toml:"export"`
	Preview   Preview   `toml:"preview"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Procedure: Procedure{Name: "createPath", PathType: "Path", Variable: "path"},
		Preview: Preview{
			Width: 256, Height: 256, Margin: 8,
			Fill: "black", Stroke: "none", StrokeWidth: 1, Background: "white",
		},
	}
}

// Validate checks the values which can't be
// verified by decoding alone.
func (c Config) Validate() error {
	p := c.Preview
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid preview size %dx%d", p.Width, p.Height)
	}
	if p.Margin < 0 || 2*p.Margin >= float64(p.Width) || 2*p.Margin >= float64(p.Height) {
		return fmt.Errorf("invalid preview margin %g", p.Margin)
	}
	if p.StrokeWidth < 0 {
		return fmt.Errorf("invalid stroke width %g", p.StrokeWidth)
	}
	for _, col := range [...]string{p.Fill, p.Stroke, p.Background} {
		if _, err := ParseColor(col); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a TOML configuration from `r`. Missing keys keep
// their default value, unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return cfg, fmt.Errorf("invalid configuration:\n%s", missing.String())
		}
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, cfg.Validate()
}

// Load reads the named TOML configuration file.
func Load(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes `c` as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ParseColor parses an SVG color : one of the SVG 1.1 names
// or an hexadecimal #rgb or #rrggbb value.
// "none" (or an empty string) returns a nil color.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "none" {
		return nil, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return cn, nil
	}
	hex := strings.TrimPrefix(v, "#")
	if hex == v || (len(hex) != 3 && len(hex) != 6) {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		// duplicate characters in case of 3 digit hex number
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var rgb [3]uint8
	for i := range rgb {
		t, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		rgb[i] = uint8(t)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}, nil
}
