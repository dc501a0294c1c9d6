package badger

import (
	"fmt"

	"github.com/poiesic/yojana/core"
)

// Key prefixes for different data types
const (
	schemePrefix   = "scheme"
	manifestPrefix = "manifest"
)

// makeSchemeKey generates a key for a scheme by ID.
// IDs are zero-padded so prefix iteration yields ID order.
func makeSchemeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%020d", schemePrefix, id))
}

// schemeKeyPrefix is the iteration prefix for all scheme records.
func schemeKeyPrefix() []byte {
	return []byte(schemePrefix + ":")
}

// makeManifestKey generates the key for the corpus manifest.
func makeManifestKey() []byte {
	return []byte(fmt.Sprintf("%s:corpus", manifestPrefix))
}
