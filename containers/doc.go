// Package containers provides the small, allocation-conscious data
// structures the solver builds everything else on: a generic dense 2D
// matrix and fixed-width bit sets over small non-negative indices.
//
// Design goals, mirrored from the teacher's matrix package:
//   - Flat backing storage (row-major slices / machine words), never
//     map[int]struct{} or [][]T, for cache-friendly hot loops.
//   - Bounds-checked Matrix accessors (At, Set) returning sentinel errors,
//     not panics, on caller mistakes; Get, GetUnsafeSet, Row and Col are
//     unchecked and panic like a raw slice index.
//   - Zero third-party dependencies: math/bits covers bit iteration.
package containers
