// Package geom provides the point/vector abstraction shared by the poisson
// generators and the validity harness.
//
// What:
//
//   - Float constrains the scalar type to float32 or float64.
//   - Vec[F] is a point in R^d stored as a slice; its dimension is len(v).
//   - Arithmetic (Add, Sub, Scale), Euclidean Norm/Distance, Equal, Zero.
//   - String renders the stable "(c0, c1, ..., c_{d-1})" form used in every
//     harness failure message.
//   - RandomDirection draws a sphere-uniform unit vector from a seeded source.
//
// Norms and distances are always accumulated in float64, whatever F is, so
// float32 and float64 runs are judged by the same arithmetic.
//
// Binary operations require equal dimensions and panic otherwise, like an
// out-of-range slice index: a dimension mismatch inside a run is a
// programmer error, never user input.
package geom
