package neocortex

import fuzz "github.com/google/gofuzz"

// RandomSource mints a key for RandomKeyedHandleBuilder. Spec: "no quality
// guarantees required beyond collides rarely enough that 20 retries
// usually succeed."
type RandomSource interface {
	Int32() int32
}

// gofuzzSource is the default RandomSource, backed by a fuzz.Fuzzer rather
// than a hand-rolled generator on top of math/rand.
type gofuzzSource struct {
	fuzzer *fuzz.Fuzzer
}

// newDefaultRandomSource builds the package's default RandomSource.
func newDefaultRandomSource() RandomSource {
	return &gofuzzSource{fuzzer: fuzz.New().NilChance(0)}
}

func (g *gofuzzSource) Int32() int32 {
	var k int32
	g.fuzzer.Fuzz(&k)
	return k
}
