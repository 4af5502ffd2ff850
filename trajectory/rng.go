package trajectory

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0,
// ported from github.com/katalvlaran/lvlath tsp/rng.go — same policy, same
// rationale: deterministic output without a caller having to think about
// seeding when they don't care to.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 uses
// defaultRNGSeed, otherwise the seed is used verbatim. Task selection in
// the covering phase runs single-threaded ahead of worker dispatch (see
// generate.go), so one stream from this single RNG is enough to make the
// whole round reproducible regardless of opts.Parallelism.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
