package album

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/susu3304/emojialbum/internal/catalog"
)

// Draw picks n distinct items uniformly from the catalog. Every call seeds
// a fresh source from the OS entropy pool; rolls are not reproducible on
// purpose.
func Draw(c *catalog.Catalog, n int) ([]catalog.Item, error) {
	if n < 1 {
		return nil, fmt.Errorf("draw size must be positive, got %d", n)
	}
	if n > c.Len() {
		return nil, fmt.Errorf("cannot draw %d items from a catalog of %d", n, c.Len())
	}

	rng := rand.New(rand.NewSource(entropySeed()))
	items := make([]catalog.Item, 0, n)
	for _, position := range rng.Perm(c.Len())[:n] {
		items = append(items, c.At(position))
	}
	return items, nil
}

func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing means the OS entropy pool is broken; there
		// is no better fallback than letting math/rand self-seed.
		return rand.Int63()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
