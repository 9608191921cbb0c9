package pipeline

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/ironsheep/sprite-tools/internal/config"
	"github.com/ironsheep/sprite-tools/internal/imageio"
	"github.com/ironsheep/sprite-tools/internal/sprite"
)

// Result describes one successfully processed input.
type Result struct {
	// Input is the file (or variant family name) that was processed.
	Input string

	// Outputs lists every file written, sprite first.
	Outputs []string

	// Offset is the suggested render offset for the sprite.
	Offset sprite.Offset

	// ShadowOffset is the suggested offset for the shadow companion,
	// nil when no shadow was configured.
	ShadowOffset *sprite.Offset
}

// Runner executes the pipeline for a fixed set of options.
type Runner struct {
	cache *imageio.Cache
	opts  config.Options
}

// New creates a Runner backed by cache.
func New(cache *imageio.Cache, opts config.Options) *Runner {
	return &Runner{cache: cache, opts: opts}
}

// ProcessFile runs the full pipeline for a single input.
func (r *Runner) ProcessFile(input string) (Result, error) {
	if r.opts.Icon {
		return r.processIcon(input)
	}
	return r.processSprite(input)
}

func (r *Runner) processSprite(input string) (Result, error) {
	anchor := sprite.ResolveAnchor(r.opts.Align)

	// Verify every file up front so a missing frame aborts before
	// anything is written.
	paths, err := r.framePaths(input)
	if err != nil {
		return Result{}, err
	}
	if r.opts.ShadowPath != "" {
		if err := imageio.Stat(r.opts.ShadowPath); err != nil {
			return Result{}, err
		}
	}

	frames := make([]*image.NRGBA, len(paths))
	for i, path := range paths {
		frame, err := r.prepare(path, anchor)
		if err != nil {
			return Result{}, err
		}
		frames[i] = frame
	}

	out := frames[0]
	if len(frames) > 1 {
		out, err = sprite.ComposeSheet(frames)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", input, err)
		}
	}

	outPath := r.outPath(input)
	if err := imageio.SavePNG(outPath, out); err != nil {
		return Result{}, err
	}
	r.logf("Saved %s", outPath)

	result := Result{
		Input:   input,
		Outputs: []string{outPath},
		Offset:  sprite.SuggestOffset(frames[0], anchor),
	}

	if r.opts.ShadowPath != "" {
		shadow, err := r.prepare(r.opts.ShadowPath, anchor)
		if err != nil {
			return Result{}, err
		}
		shadowOut := r.outPath(r.opts.ShadowPath)
		if err := imageio.SavePNG(shadowOut, shadow); err != nil {
			return Result{}, err
		}
		r.logf("Saved %s", shadowOut)

		offset := sprite.SuggestShadowOffset(frames[0], result.Offset, shadow)
		result.ShadowOffset = &offset
		result.Outputs = append(result.Outputs, shadowOut)
	}

	return result, nil
}

func (r *Runner) processIcon(input string) (Result, error) {
	if err := imageio.Stat(input); err != nil {
		return Result{}, err
	}
	img, err := r.cache.Load(input)
	if err != nil {
		return Result{}, err
	}
	b := img.Bounds()
	r.logf("Loaded %s (%dx%d)", input, b.Dx(), b.Dy())

	atlas, err := sprite.ComposeAtlas(img, r.opts.Shadow)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", input, err)
	}

	outPath := r.outPath(input)
	if err := imageio.SavePNG(outPath, atlas); err != nil {
		return Result{}, err
	}
	r.logf("Saved %s", outPath)

	return Result{Input: input, Outputs: []string{outPath}}, nil
}

// prepare runs one image through the shared load, trim, and tile fit
// stages.
func (r *Runner) prepare(path string, anchor sprite.Anchor) (*image.NRGBA, error) {
	img, err := r.cache.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	r.logf("Loaded %s (%dx%d)", path, b.Dx(), b.Dy())

	trimmed, err := sprite.Trim(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tb := trimmed.Bounds()
	r.logf("Trimmed %s to %dx%d", path, tb.Dx(), tb.Dy())

	spec := sprite.ResizeSpec{TargetSize: sprite.TileSize, Scale: r.opts.Scale}
	if r.opts.Square {
		spec.Anchor = &anchor
	}
	resized, err := sprite.Resize(trimmed, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rb := resized.Bounds()
	r.logf("Resized %s to %dx%d", path, rb.Dx(), rb.Dy())

	return resized, nil
}

// framePaths expands input into its ordered frame files. With variants
// the input name stands for numbered siblings: walk.png names
// walk1.png, walk2.png and so on.
func (r *Runner) framePaths(input string) ([]string, error) {
	if r.opts.Variants <= 1 {
		if err := imageio.Stat(input); err != nil {
			return nil, err
		}
		return []string{input}, nil
	}

	paths := make([]string, r.opts.Variants)
	for i := range paths {
		paths[i] = variantPath(input, i+1)
		if err := imageio.Stat(paths[i]); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// variantPath derives the i-th numbered sibling of path, inserting the
// index between stem and extension.
func variantPath(path string, i int) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s%d%s", stem, i, ext)
}

// outPath maps an input to its PNG destination in the output
// directory.
func (r *Runner) outPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(r.opts.OutDir, stem+".png")
}

// WatchTargets maps every file the pipeline reads to the input it
// belongs to, so watch mode can reprocess the right input when a
// frame or shadow file changes.
func (r *Runner) WatchTargets() map[string]string {
	targets := make(map[string]string)
	for _, input := range r.opts.Inputs {
		if r.opts.Variants > 1 {
			for i := 1; i <= r.opts.Variants; i++ {
				targets[variantPath(input, i)] = input
			}
		} else {
			targets[input] = input
		}
		if r.opts.ShadowPath != "" {
			targets[r.opts.ShadowPath] = input
		}
	}
	return targets
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.opts.Verbose {
		log.Printf(format, args...)
	}
}
