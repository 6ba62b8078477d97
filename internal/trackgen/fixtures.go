package trackgen

import "github.com/flightscore/freedist/geo"

// Seeds pinned so FixtureA/FixtureB are reproducible across runs and
// across packages that import trackgen for their own tests.
const (
	fixtureASeed int64 = 20230617
	fixtureBSeed int64 = 10000016

	fixtureAFixes = 400
	fixtureBFixes = 600
)

// FixtureA returns a deterministic synthetic trajectory approximating
// the shape of the scoring system's first named end-to-end scenario: a
// multi-hour thermalling flight. The exact free-distance result this
// kernel computes over it is specific to this generator, not to any
// recorder file — only its determinism and structural properties are
// meant to be relied on by tests. Its altitude never drops more than a
// few hundred meters below an earlier fix, so the 1000-unit rule never
// excludes a path over it.
func FixtureA() geo.SliceSource {
	return Generate(fixtureAFixes, fixtureASeed)
}

// FixtureB returns a deterministic synthetic trajectory standing in for
// the scoring system's second named end-to-end scenario: a longer track
// from the same generator as FixtureA with a different seed, so it has
// the same climb/glide balance. Same caveats as FixtureA.
func FixtureB() geo.SliceSource {
	return Generate(fixtureBFixes, fixtureBSeed)
}
