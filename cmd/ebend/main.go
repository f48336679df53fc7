// Command ebend writes the outline of an Euler bend waveguide as SVG, PNG,
// WKT or a YAML report.
//
// Lengths are in microns and the angle is in radians:
//
//	ebend --rmin 10 --width 0.5 --theta 1.5708 --format png --out bend.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/eulerbend"
	"honnef.co/go/eulerbend/pcell"
	"honnef.co/go/eulerbend/raster"
	"honnef.co/go/eulerbend/wkt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var (
		configPath string
		outPath    string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "ebend",
		Short: "Generate Euler bend waveguide outlines",
		Long: `Generate the outline of an Euler bend waveguide: a bend whose curvature
grows linearly from zero to 1/rmin at its midpoint and falls back to zero.

The outline is snapped to the database grid (--dbu, in microns) and written
in the chosen format:
  svg   - an SVG document, one path per layer
  png   - a filled raster image, --scale pixels per micron
  wkt   - one line per layer: the layer, a tab and a MULTIPOLYGON
  yaml  - parameters, derived values and the outline in database units

Settings can be read from a TOML file with --config using the flag names as
keys. Flags given explicitly take precedence over the file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			eulerbend.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if configPath != "" {
				file, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.merge(file, cmd.Flags().Changed)
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" && outPath != "-" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				if err := run(cfg, f); err != nil {
					f.Close()
					os.Remove(outPath)
					return err
				}
				return f.Close()
			}
			return run(cfg, out)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&cfg.RMin, "rmin", cfg.RMin, "minimum bend radius in microns")
	flags.Float64Var(&cfg.Width, "width", cfg.Width, "waveguide width in microns")
	flags.Float64Var(&cfg.Theta, "theta", cfg.Theta, "total bend angle in radians, in (0, π]")
	flags.IntVar(&cfg.Points, "points", cfg.Points, "samples per half of the bend")
	flags.Float64Var(&cfg.DBU, "dbu", cfg.DBU, "database unit in microns")
	flags.StringVar(&cfg.Layer, "layer", cfg.Layer, "target layer as layer/datatype")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: svg, png, wkt or yaml")
	flags.Float64Var(&cfg.Scale, "scale", cfg.Scale, "pixels per micron for png output")
	flags.StringVar(&outPath, "out", "", "output file (default stdout)")
	flags.StringVar(&configPath, "config", "", "TOML file with settings")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	return cmd
}

func run(cfg config, out io.Writer) error {
	layer, err := pcell.ParseLayer(cfg.Layer)
	if err != nil {
		return err
	}
	switch cfg.Format {
	case "svg", "png", "wkt", "yaml":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}

	reg := pcell.NewRegistry()
	reg.Register(pcell.NewDefaultLibrary())
	lib, _ := reg.Lookup(pcell.DefaultLibraryName)

	layout, err := pcell.NewLayout(cfg.DBU)
	if err != nil {
		return err
	}
	cell, err := lib.CreateCell(layout, pcell.EulerBendName, pcell.Values{
		"l":     layer,
		"rmin":  cfg.RMin,
		"w":     cfg.Width,
		"theta": cfg.Theta,
		"n":     2 * cfg.Points,
	})
	if err != nil {
		return err
	}
	eulerbend.Logger().Info(cell.DisplayText, "format", cfg.Format)

	switch cfg.Format {
	case "svg":
		sink := &eulerbend.SVGSink{Margin: cfg.Width, Options: eulerbend.SVGOptions{MaxPrecision: 4}}
		if err := cell.Emit(sink); err != nil {
			return err
		}
		return sink.WriteSVG(out)
	case "png":
		sink := &raster.Sink{Scale: cfg.Scale, Margin: 4}
		if err := cell.Emit(sink); err != nil {
			return err
		}
		return sink.WritePNG(out)
	case "wkt":
		var sink wkt.Sink
		if err := cell.Emit(&sink); err != nil {
			return err
		}
		_, err := sink.WriteTo(out)
		return err
	default:
		return writeReport(out, cfg, cell, layer)
	}
}

// report is the YAML document written by the yaml format.
type report struct {
	Name    string     `yaml:"name"`
	Layer   string     `yaml:"layer"`
	RMin    float64    `yaml:"rmin"`
	Width   float64    `yaml:"width"`
	Theta   float64    `yaml:"theta"`
	Points  int        `yaml:"points"`
	DBU     float64    `yaml:"dbu"`
	Length  float64    `yaml:"length"`
	Area    float64    `yaml:"area"`
	Outline [][2]int32 `yaml:"outline,flow"`
}

func writeReport(out io.Writer, cfg config, cell *pcell.Cell, layer eulerbend.Layer) error {
	shapes := cell.Shapes(layer)
	if len(shapes) != 1 {
		return fmt.Errorf("cell %s has %d polygons on %s", cell.Name, len(shapes), layer)
	}
	poly := shapes[0]
	r := report{
		Name:   cell.DisplayText,
		Layer:  layer.String(),
		RMin:   cfg.RMin,
		Width:  cfg.Width,
		Theta:  cfg.Theta,
		Points: cfg.Points,
		DBU:    cfg.DBU,
		Length: 2 * cfg.Theta * cfg.RMin,
		Area:   math.Abs(poly.Float().SignedArea()) * cfg.DBU * cfg.DBU,
	}
	for _, pt := range poly {
		r.Outline = append(r.Outline, [2]int32{pt.X, pt.Y})
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
