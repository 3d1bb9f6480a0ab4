// Package algorithm provides two incremental Poisson-disk generator families
// that satisfy poisson.Generator:
//
//   - Bridson grows samples outward from an active list, throwing up to k
//     darts into the annulus [2r, 4r] around a random active sample.
//   - Ebeida throws darts into a flat list of grid cells and, after each
//     phase, splits surviving cells and discards children already covered
//     by a sample's 2r-ball.
//
// Both families share an occupancy grid whose cells are small enough that
// each holds at most one legal point, which gives every generator a sound
// upper size hint: the number of cells that can still take a sample.
//
// Generators accept injected points at any time through Restrict; injected
// points are never emitted but constrain every later sample. StaysLegal is a
// pure query against the same state.
//
// Determinism: a generator is a pure function of (Params, seed, options).
// The 32-byte seed keys a math/rand/v2 ChaCha8 stream owned by the generator.
//
// Concurrency: generators are NOT safe for concurrent use.
//
// Knobs (functional options, panic on meaningless values):
//
//	WithCandidates(k)        Bridson darts per active sample      (30)
//	WithInitialAttempts(n)   Bridson darts for the first sample   (1000)
//	WithThrowFactor(a)       Ebeida throws per active cell/phase  (0.8)
//	WithMaxRefinement(l)     Ebeida refinement levels             (12)
//	WithMaxCells(n)          Ebeida active-cell cap               (1<<21)
package algorithm
