package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/sprite-tools/internal/config"
	"github.com/ironsheep/sprite-tools/internal/imageio"
	"github.com/ironsheep/sprite-tools/internal/pipeline"
	"github.com/ironsheep/sprite-tools/internal/sprite"
	"github.com/ironsheep/sprite-tools/internal/watcher"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const desc = `Sprite and icon pipeline for pixel artwork.

Trims transparent borders, fits sprites to the 64px tile, composes
animation sheets and icon atlases, and prints the render offsets the
game needs to place each asset. Results are always PNG files in the
output directory.`

var cli struct {
	Out   *string  `short:"o" help:"Output directory for generated assets."`
	Scale *float64 `short:"s" help:"Scale factor applied after the tile fit."`
	Align *string  `short:"a" help:"Alignment, named (\"bottom-left\") or numeric (\"0.5,1\")."`

	Variants int    `short:"n" default:"1" help:"Number of numbered frame files composing one sheet."`
	Icon     bool   `help:"Compose the multi-resolution icon atlas instead of a sprite."`
	Shadow   string `help:"Companion shadow image processed alongside the sprite."`
	Square   bool   `help:"Pad resized sprites onto a square tile canvas."`

	ShadowOffsetX *int     `help:"Drop shadow X offset in pixels."`
	ShadowOffsetY *int     `help:"Drop shadow Y offset in pixels."`
	ShadowBlur    *int     `help:"Drop shadow blur radius in pixels."`
	ShadowColor   *string  `help:"Drop shadow color as a hex string."`
	ShadowOpacity *float64 `help:"Drop shadow opacity in [0,1]."`

	Config  string `short:"c" help:"Defaults file; sprite-tools.yaml is picked up when present."`
	Jobs    *int   `short:"j" help:"Maximum inputs processed concurrently."`
	Watch   bool   `short:"w" help:"Keep running and reprocess inputs when they change."`
	Verbose bool   `short:"v" help:"Log each pipeline stage."`

	Version kong.VersionFlag `help:"Print version information and quit."`

	Inputs []string `arg:"" optional:"" help:"Artwork files to process."`
}

func main() {
	ktx := kong.Parse(&cli,
		kong.Name("sprite-tools"),
		kong.Description(desc),
		kong.Vars{
			"version": fmt.Sprintf("sprite-tools %s (built %s, commit %s)", Version, BuildTime, GitCommit),
		},
	)

	// Configure logging to stderr (stdout carries the offset output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	opts, err := config.Build(config.Flags{
		Inputs:        cli.Inputs,
		OutDir:        cli.Out,
		Scale:         cli.Scale,
		Align:         cli.Align,
		Variants:      cli.Variants,
		Icon:          cli.Icon,
		ShadowPath:    cli.Shadow,
		Square:        cli.Square,
		ShadowOffsetX: cli.ShadowOffsetX,
		ShadowOffsetY: cli.ShadowOffsetY,
		ShadowBlur:    cli.ShadowBlur,
		ShadowColor:   cli.ShadowColor,
		ShadowOpacity: cli.ShadowOpacity,
		Jobs:          cli.Jobs,
		Watch:         cli.Watch,
		Verbose:       cli.Verbose,
	}, cli.Config)
	ktx.FatalIfErrorf(err)

	cache := imageio.NewCache()
	runner := pipeline.New(cache, opts)

	batch := runner.Run()
	if !opts.Icon {
		for _, res := range batch.Results {
			printOffsets(res)
		}
	}
	reportErrors(batch.Errors, opts.Square)

	if opts.Watch {
		ktx.FatalIfErrorf(watchLoop(runner, cache, opts))
		return
	}
	if len(batch.Errors) > 0 {
		os.Exit(1)
	}
}

// printOffsets writes the suggested render offsets to stdout, ready to
// be pasted into asset definitions.
func printOffsets(res pipeline.Result) {
	fmt.Printf("%s: offset %.3f,%.3f\n", res.Input, res.Offset.X, res.Offset.Y)
	if res.ShadowOffset != nil {
		fmt.Printf("%s: shadow offset %.3f,%.3f\n", res.Input, res.ShadowOffset.X, res.ShadowOffset.Y)
	}
}

// reportErrors logs every failure. A frame size mismatch also gets a
// hint, since padding onto the square canvas is how mixed-size frames
// are reconciled.
func reportErrors(errs []error, square bool) {
	for _, err := range errs {
		log.Printf("Error: %v", err)
		var mismatch *sprite.DimensionMismatchError
		if errors.As(err, &mismatch) && !square {
			log.Printf("Hint: --square pads every frame onto the same canvas")
		}
	}
}

// watchLoop reprocesses inputs as their files change, until the
// process is interrupted.
func watchLoop(runner *pipeline.Runner, cache *imageio.Cache, opts config.Options) error {
	w, err := watcher.New(runner.WatchTargets())
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Watch mode active, press Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-w.Changes():
			cache.Evict(change.Path)
			res, err := runner.ProcessFile(change.Input)
			if err != nil {
				log.Printf("Error: %v", err)
				continue
			}
			log.Printf("Reprocessed %s", change.Input)
			if !opts.Icon {
				printOffsets(res)
			}
		}
	}
}
