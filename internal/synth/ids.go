package synth

import (
	"math"
	"math/rand/v2"
	"strconv"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// reviewIDPrefix matches the prefix Outscraper review IDs carry in real
// exports.
const reviewIDPrefix = "Ci9DQUF"

func reviewID(rng *rand.Rand) string {
	buf := make([]byte, 0, len(reviewIDPrefix)+50)
	buf = append(buf, reviewIDPrefix...)
	for i := 0; i < 50; i++ {
		buf = append(buf, idCharset[rng.IntN(len(idCharset))])
	}
	return string(buf)
}

// authorID is an 18-digit decimal string, like a Google contributor ID.
func authorID(rng *rand.Rand) string {
	const lo, hi = 100000000000000000, 999999999999999999
	return strconv.FormatInt(lo+rng.Int64N(hi-lo+1), 10)
}

// reviewsID is a signed decimal in the full int64 range.
func reviewsID(rng *rand.Rand) string {
	n := rng.Int64N(math.MaxInt64)
	if rng.IntN(2) == 0 {
		n = -n
	}
	return strconv.FormatInt(n, 10)
}
