// Package trackgen builds deterministic synthetic flight trajectories for
// tests. It owns no recorder-log parser and vendors no real flight
// recordings; every track it produces is generated from a seeded random
// walk, translated from the RNG-seeding discipline in
// katalvlaran/lvlath's tsp package (rngFromSeed/deriveSeed/deriveRNG) so
// that the same seed always reproduces the same fixes across platforms.
//
// FixtureA and FixtureB approximate the shape of the two end-to-end
// scenarios named in this kernel's scoring rules (a multi-hour soaring
// flight and a longer out-and-return-like glide) closely enough to
// exercise determinism, the altitude-loss rule, and distance-consistency
// properties — they are not reconstructions of the original recorder
// files, which this module never had access to.
package trackgen
