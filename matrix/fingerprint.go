// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxhash of m's order, shape and raw element
// bytes. Equal buffers of the same element type, shape and order hash
// equally; the logical matrix in a different order hashes differently.
//
// Complexity:
//   - Time O(r*c); no allocation beyond the 24-byte header.
func Fingerprint[T Element](m *Flat[T]) uint64 {
	if m == nil {
		return 0
	}

	d := xxhash.New()
	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(m.order))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(m.r))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(m.c))
	_, _ = d.Write(hdr[:])
	_, _ = d.Write(elementBytes(m.data))

	return d.Sum64()
}

// elementBytes views a slice of numeric elements as its backing bytes.
func elementBytes[T Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(data[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*size)
}
