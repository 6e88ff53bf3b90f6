package noise

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// SeedFromPhrase turns a human readable world seed into a numeric one.
func SeedFromPhrase(phrase string) int64 {
	return int64(xxhash.Sum64String(phrase))
}

// DeriveSeed mixes a layer name into seed so that layers built from one
// world seed get uncorrelated permutation tables.
func DeriveSeed(seed int64, layer string) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(layer)
	return int64(d.Sum64())
}
