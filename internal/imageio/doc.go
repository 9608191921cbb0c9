// Package imageio handles the file boundary of the pipeline: decoding
// artwork into straight-alpha pixel buffers and encoding finished buffers
// back to disk.
//
// # Formats
//
// Decoding supports PNG, JPEG, GIF, TIFF, and BMP; the format is detected
// from file contents, not the extension. Every decoded image is
// normalized to a zero-origin *image.NRGBA before it reaches the
// pipeline, so pixel stages never see premultiplied, paletted, or YCbCr
// data. Output is always PNG.
//
// # Ownership
//
// The Cache keeps one pristine decode per path and hands out copies. A
// caller can feed its buffer through mutating pipeline stages without
// poisoning later loads of the same file; watch mode relies on this when
// it reprocesses a file from a clean decode.
package imageio
