package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config holds the settings of a run. Config files use the same keys as the
// command line flags.
type config struct {
	RMin   float64 `toml:"rmin"`
	Width  float64 `toml:"width"`
	Theta  float64 `toml:"theta"`
	Points int     `toml:"points"`
	DBU    float64 `toml:"dbu"`
	Layer  string  `toml:"layer"`
	Format string  `toml:"format"`
	// Scale is the number of pixels per micron in PNG output.
	Scale float64 `toml:"scale"`
}

func defaultConfig() config {
	return config{
		RMin:   10,
		Width:  0.5,
		Theta:  math.Pi / 2,
		Points: 50,
		DBU:    0.001,
		Layer:  "1/0",
		Format: "svg",
		Scale:  20,
	}
}

// loadConfig reads a TOML file on top of the defaults. Unknown keys are an
// error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

// merge replaces every setting of c whose flag wasn't set explicitly with
// the value from file.
func (c *config) merge(file config, changed func(flag string) bool) {
	if !changed("rmin") {
		c.RMin = file.RMin
	}
	if !changed("width") {
		c.Width = file.Width
	}
	if !changed("theta") {
		c.Theta = file.Theta
	}
	if !changed("points") {
		c.Points = file.Points
	}
	if !changed("dbu") {
		c.DBU = file.DBU
	}
	if !changed("layer") {
		c.Layer = file.Layer
	}
	if !changed("format") {
		c.Format = file.Format
	}
	if !changed("scale") {
		c.Scale = file.Scale
	}
}
