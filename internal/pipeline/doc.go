// Package pipeline turns source artwork into game-ready sprite and
// icon assets.
//
// A Runner binds an image cache to one resolved set of options and
// processes each input file independently. Sprite inputs run through
// trim, tile fit, optional frame sheet composition, and a PNG save;
// icon inputs are composed into the fixed multi-resolution atlas.
// Alongside the saved asset the runner computes the render offsets the
// game needs to place the sprite on its tile.
//
// # Sprite Path
//
// A sprite input is loaded, stripped of its transparent border, and
// fitted to the 64 pixel tile size. With variants enabled the input
// name stands for a family of numbered frame files which are each
// prepared the same way and then composed side by side into one sheet.
// A configured shadow companion is prepared with the same stages and
// saved next to the sprite, and its placement offset is derived from
// both images.
//
// # Icon Path
//
// An icon input skips the sprite stages entirely. The source is
// composed into the four-resolution icon atlas, drop shadow included,
// and saved as a single PNG.
//
// # Output Naming
//
// Every asset is written to the output directory as <stem>.png, where
// stem is the input's base name without extension. The directory is
// created on demand.
//
// # Failure Isolation
//
// Batch runs process inputs concurrently under a configurable bound.
// One bad input reports its error and leaves every other input's
// processing untouched.
package pipeline
