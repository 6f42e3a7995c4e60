// Package splat stylizes an image by painting many short colored lines onto
// a blank canvas.
//
// # Styles
//
//   - random: uniformly placed lines up to 128 pixels long, colored with the
//     mean of the colors sampled at both ends.
//   - steered: lines up to 64 pixels long that follow the edge tangent at
//     their start point, colored like random lines.
//   - energy: two rays fired from a random centre in opposite directions.
//     Each ray has a budget of energy that it loses faster when crossing
//     strong edges at an angle, so lines stop at edges. Colored with a
//     lightness-shifted sample of the centre.
//   - edgeweb: every edge pixel is joined to its nearest edge pixel with the
//     same gradient direction 4 to 50 pixels away. Drawn once; the line
//     count does not apply.
//
// # Randomness
//
// All random choices go through a Source. Seeding it with NewRand makes a
// run fully reproducible, since lines are always drawn in the order they are
// generated.
//
// # Failure Modes
//
// Nothing in this package returns an error for a valid input buffer. When
// rejection sampling cannot find an endpoint on the canvas within a fixed
// number of attempts (for example on a 1x1 image), that single line is
// skipped and counted in Stats.Skipped.
package splat
