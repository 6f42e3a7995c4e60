// Package raster clips and rasterizes line segments onto a bounded canvas.
//
// Segments are given by two integer endpoints which may lie anywhere,
// including far outside the canvas. Before rasterization the segment is
// clipped to the canvas box [0,width-1]x[0,height-1]:
//
//   - Horizontal and vertical segments are clamped directly.
//   - An endpoint outside the box is first projected onto the box boundary
//     with a ray/box slab test limited to the segment length.
//   - If the second endpoint is still outside, it is replaced by the point
//     where the line leaves the box, seen from the first endpoint.
//
// The clipped segment is then walked from left to right with an incremental
// error term, in the manner of Bresenham's algorithm. No function in this
// package returns an error: degenerate geometry only shortens or empties the
// set of produced pixels.
//
// # Enumeration
//
// NewLine returns a lazy, single-use *Line. Fold threads an explicit state
// value through the pixels, which is how ray walkers accumulate state
// without closures over mutable variables.
package raster
