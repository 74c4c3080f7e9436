// Package interp provides interpolation primitives and uniform resampling
// of short series.
//
// Available methods:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// [Resample] places a series evenly on [0, 1] and evaluates it at a new
// number of evenly spaced points. It is used to map narratives of different
// lengths onto a common percentage-of-progression axis.
package interp
