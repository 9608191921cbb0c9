// Package sprite implements the pixel pipeline that turns raw artwork
// into game-ready sprite assets.
//
// The pipeline operates on straight-alpha RGBA buffers (*image.NRGBA)
// and is built from small composable stages:
//
//   - Trim crops away fully transparent padding.
//   - Resize fits a sprite to the 64px reference tile, preserving the
//     aspect ratio, with optional square padding placed by an anchor.
//   - ResolveAnchor turns a semantic alignment request ("bottom right",
//     "center") or a numeric pair into a normalized anchor point.
//   - SuggestOffset and SuggestShadowOffset derive advisory placement
//     offsets for the game's renderer.
//   - ComposeSheet concatenates equal-sized frames into a sprite sheet.
//   - ComposeAtlas renders one source at four fixed resolutions onto a
//     120x64 icon atlas.
//   - ApplyDropShadow synthesizes a displaced, blurred silhouette shadow
//     behind existing content.
//
// # Buffer Model
//
// Every stage takes ownership of its input buffer: it either mutates the
// buffer in place (ApplyDropShadow) or returns a new buffer that replaces
// the caller's reference (everything else). Buffers are zero-origin and
// never shared between concurrent stages; process independent images on
// separate buffers instead.
//
// # Alpha Model
//
// All pixel arithmetic happens in straight (non-premultiplied) alpha.
// Compositing uses the source-over operator with per-channel results
// clamped to [0,255]. A pixel with alpha 0 carries no color information.
//
// # Determinism
//
// Given identical inputs, every operation produces byte-identical output.
// There is no randomness, no time dependence, and no platform-dependent
// arithmetic in the pipeline.
package sprite
