package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/sprite"
)

// Built-in defaults, overridable by the defaults file and then by flags.
const (
	DefaultOutDir        = "out"
	DefaultAlign         = "0,0"
	DefaultScale         = 1.0
	DefaultShadowColor   = "#000000"
	DefaultShadowOpacity = 0.45
)

// Options is the resolved configuration for one invocation. Build
// constructs it once; nothing mutates it afterwards.
type Options struct {
	// Inputs are the artwork files to process.
	Inputs []string

	// OutDir receives every generated asset.
	OutDir string

	// Scale multiplies sprite dimensions after the tile fit.
	Scale float64

	// Align is the raw alignment request, resolved per run by the
	// pipeline.
	Align string

	// Variants expands a single input into numbered sibling files that
	// compose into one sprite sheet.
	Variants int

	// Icon switches from sprite processing to icon atlas composition.
	Icon bool

	// ShadowPath is an optional companion shadow image, sprite path only.
	ShadowPath string

	// Square pads resized sprites onto a square tile canvas.
	Square bool

	// Shadow parametrizes drop shadow synthesis on the icon path.
	Shadow sprite.ShadowSpec

	// Jobs bounds how many inputs are processed concurrently.
	Jobs int

	// Watch keeps the process alive, reprocessing inputs as they change.
	Watch bool

	// Verbose enables per-stage dimension logging.
	Verbose bool
}

// Flags carries the raw command line into Build. Pointer fields
// distinguish a flag the user actually set from one left at its default,
// which decides whether a defaults-file value applies.
type Flags struct {
	Inputs     []string
	OutDir     *string
	Scale      *float64
	Align      *string
	Variants   int
	Icon       bool
	ShadowPath string
	Square     bool

	ShadowOffsetX *int
	ShadowOffsetY *int
	ShadowBlur    *int
	ShadowColor   *string
	ShadowOpacity *float64

	Jobs    *int
	Watch   bool
	Verbose bool
}

// Build resolves flags, the defaults file, and built-in defaults into one
// validated Options value. configPath selects the defaults file; empty
// means look for DefaultConfigFile in the working directory.
func Build(flags Flags, configPath string) (Options, error) {
	file, err := LoadFile(configPath)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Inputs:     flags.Inputs,
		OutDir:     DefaultOutDir,
		Scale:      DefaultScale,
		Align:      DefaultAlign,
		Variants:   flags.Variants,
		Icon:       flags.Icon,
		ShadowPath: flags.ShadowPath,
		Square:     flags.Square,
		Shadow:     sprite.DefaultShadow(),
		Jobs:       runtime.NumCPU(),
		Watch:      flags.Watch,
		Verbose:    flags.Verbose,
	}
	colorHex := DefaultShadowColor
	opacity := DefaultShadowOpacity

	// Defaults file first
	if file.OutDir != nil {
		opts.OutDir = *file.OutDir
	}
	if file.Scale != nil {
		opts.Scale = *file.Scale
	}
	if file.Align != nil {
		opts.Align = *file.Align
	}
	if file.Jobs != nil {
		opts.Jobs = *file.Jobs
	}
	if s := file.Shadow; s != nil {
		if s.OffsetX != nil {
			opts.Shadow.OffsetX = *s.OffsetX
		}
		if s.OffsetY != nil {
			opts.Shadow.OffsetY = *s.OffsetY
		}
		if s.Blur != nil {
			opts.Shadow.Blur = *s.Blur
		}
		if s.Color != nil {
			colorHex = *s.Color
		}
		if s.Opacity != nil {
			opacity = *s.Opacity
		}
	}

	// Flags win
	if flags.OutDir != nil {
		opts.OutDir = *flags.OutDir
	}
	if flags.Scale != nil {
		opts.Scale = *flags.Scale
	}
	if flags.Align != nil {
		opts.Align = *flags.Align
	}
	if flags.Jobs != nil {
		opts.Jobs = *flags.Jobs
	}
	if flags.ShadowOffsetX != nil {
		opts.Shadow.OffsetX = *flags.ShadowOffsetX
	}
	if flags.ShadowOffsetY != nil {
		opts.Shadow.OffsetY = *flags.ShadowOffsetY
	}
	if flags.ShadowBlur != nil {
		opts.Shadow.Blur = *flags.ShadowBlur
	}
	if flags.ShadowColor != nil {
		colorHex = *flags.ShadowColor
	}
	if flags.ShadowOpacity != nil {
		opacity = *flags.ShadowOpacity
	}

	shadowColor, err := ParseShadowColor(colorHex, opacity)
	if err != nil {
		return Options{}, err
	}
	opts.Shadow.Color = shadowColor

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate rejects option combinations the pipeline cannot honor.
func (o Options) Validate() error {
	if len(o.Inputs) == 0 {
		return errors.New("at least one input file is required")
	}
	if o.Variants < 1 {
		return fmt.Errorf("variants must be at least 1, got %d", o.Variants)
	}
	if o.Variants > 1 && len(o.Inputs) != 1 {
		return fmt.Errorf("variants require exactly one input, got %d", len(o.Inputs))
	}
	// Outputs are named by the input's stem, so inputs sharing a stem
	// would silently overwrite each other.
	seen := make(map[string]string, len(o.Inputs))
	for _, input := range o.Inputs {
		stem := outputStem(input)
		if prev, ok := seen[stem]; ok {
			return fmt.Errorf("inputs %s and %s would both write %s.png", prev, input, stem)
		}
		seen[stem] = input
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return fmt.Errorf("scale must be positive, got %g", o.Scale)
	}
	if o.Shadow.Blur < 0 {
		return fmt.Errorf("shadow blur must not be negative, got %d", o.Shadow.Blur)
	}
	if o.ShadowPath != "" && o.Icon {
		return errors.New("a shadow companion applies to sprite processing, not icons")
	}
	if o.ShadowPath != "" && len(o.Inputs) != 1 {
		return errors.New("a shadow companion requires exactly one input")
	}
	if o.ShadowPath != "" {
		if stem := outputStem(o.ShadowPath); stem == outputStem(o.Inputs[0]) {
			return fmt.Errorf("shadow %s and input %s would both write %s.png", o.ShadowPath, o.Inputs[0], stem)
		}
	}
	if o.Icon && o.Variants > 1 {
		return errors.New("variants apply to sprite processing, not icons")
	}
	if o.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", o.Jobs)
	}
	return nil
}

// outputStem is the basename without extension, which names the file the
// pipeline writes for an input.
func outputStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
