// Package tilecode provides sparse, generalized tile coding for Go.
//
// Tile coding maps a point in continuous (and optionally discrete) space to
// a fixed-size set of integer feature indices, historically used as the
// linear function-approximation basis for reinforcement-learning value
// functions. The library produces indices only: consumers own any weight
// vector indexed by the returned values.
//
// # Quick Start
//
// Bounded engine (dense indices, collision-free until the table fills):
//
//	tc, _ := tilecode.New(8, tilecode.WithIHT(4096))
//	indices := tc.Tiles([]float64{x, y}) // 8 indices in [0, 4096)
//
// Unbounded engine (stateless hashing, no table):
//
//	tc, _ := tilecode.New(8, tilecode.WithHashSize(1<<20))
//	indices := tc.Tiles([]float64{x, y}) // 8 indices in [0, 1<<20)
//
// Discrete context tags keep tilings disjoint per context (e.g. per action):
//
//	indices := tc.Tiles([]float64{x, y}, actionID)
//
// Cyclic dimensions (angles, time of day) use the wrap-around variant:
//
//	indices, _ := tc.TilesWrap([]float64{angle}, []int{period})
//
// # Engines
//
// Choose the engine at construction:
//   - IHT (WithIHT): capacity-bounded table, first-seen dense numbering,
//     deterministic collision fallback once full. Best when the index space
//     fits in memory and collision-free indices matter.
//   - Hash (WithHashSize): pure content hashing into [0, size), O(1)
//     memory, collisions expected by design. Best for astronomically large
//     index spaces.
//
// Both engines are deterministic across runs. Results depend only on the
// inputs (and, for the IHT, on the order distinct tiles were first seen).
//
// # Conventions
//
// numTilings should be a power of two at least 4x the number of continuous
// dimensions. This is a usage convention for good generalization, not an
// enforced invariant.
package tilecode
