// Package fingerprint derives the stable cache key for submitted content.
package fingerprint

import (
	"fmt"
	"strings"

	"github.com/OneOfOne/xxhash"
)

// Normalize lowercases content and collapses all whitespace so that
// trivially reformatted copies of the same text share a fingerprint.
func Normalize(content string) string {
	return strings.ToLower(strings.Join(strings.Fields(content), " "))
}

// Of returns the content fingerprint: xxhash64 of the normalized text,
// hex encoded. Deterministic and total.
func Of(content string) string {
	return fmt.Sprintf("%016x", xxhash.ChecksumString64(Normalize(content)))
}

// OfBytes fingerprints raw bytes without normalization. Used for
// content-addressing blob payloads.
func OfBytes(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Checksum64(b))
}
