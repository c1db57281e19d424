package main

import (
	"flag"
	"io"
	"strconv"
	"strings"
)

type cliArgs struct {
	configPath string
	source     string
	text       string
	font       string
	size       float64
	color      string
	modes      string
	x          optionalInt
	y          optionalInt
	outputDir  string
	preview    bool
	debug      bool

	set map[string]bool
}

// optionalInt is an int flag that remembers whether it was given, so 0 is a real value.
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o == nil || o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func parseFlags(arguments []string, output io.Writer) (cliArgs, error) {
	args := cliArgs{set: make(map[string]bool)}

	fs := flag.NewFlagSet("logo-overlay", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&args.configPath, "config", defaultConfigPath, "Path to a YAML or JSON config file")
	fs.StringVar(&args.source, "source", "", "Source image path")
	fs.StringVar(&args.text, "text", "", "Text to render")
	fs.StringVar(&args.font, "font", "", "Font file path or embedded family (goregular, gobold, ...)")
	fs.Float64Var(&args.size, "size", 0, "Font size in points")
	fs.StringVar(&args.color, "color", "", "Fill colour as #rrggbb or #rrggbbaa")
	fs.StringVar(&args.modes, "mode", "", "Comma-separated modes: beneath, above, overlay")
	fs.Var(&args.x, "x", "Overlay anchor x (defaults to the image centre)")
	fs.Var(&args.y, "y", "Overlay anchor y (defaults to the image centre)")
	fs.StringVar(&args.outputDir, "out", "", "Directory for output files")
	fs.BoolVar(&args.preview, "preview", false, "Show the last composite on the LED matrix")
	fs.BoolVar(&args.debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(arguments); err != nil {
		return args, err
	}
	fs.Visit(func(f *flag.Flag) {
		args.set[f.Name] = true
	})
	return args, nil
}

// apply overrides cfg with every flag given on the command line.
func (a cliArgs) apply(cfg Config) Config {
	if a.set["source"] {
		cfg.Source = a.source
	}
	if a.set["text"] {
		cfg.Text = a.text
	}
	if a.set["font"] {
		cfg.Font = a.font
	}
	if a.set["size"] {
		cfg.Size = a.size
	}
	if a.set["color"] {
		cfg.Color = a.color
	}
	if a.set["mode"] {
		cfg.Modes = strings.Split(a.modes, ",")
	}
	if a.set["x"] {
		cfg.X = a.x.value
	}
	if a.set["y"] {
		cfg.Y = a.y.value
	}
	if a.set["out"] {
		cfg.OutputDir = a.outputDir
	}
	if a.set["preview"] {
		cfg.Preview = a.preview
	}
	return cfg
}
