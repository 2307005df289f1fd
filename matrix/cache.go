// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"unsafe"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Cache sizing defaults for NewTransposeCache.
const (
	DefaultCacheCounters = 1e5 // keys tracked for admission frequency
	DefaultCacheBuffer   = 64  // keys per Get buffer
)

// TransposeCache memoizes the ColMajor layout of right-hand operands, keyed
// by Fingerprint. Multiplying many left operands by the same B pays for the
// re-linearization of B once.
//
// Cached buffers are never handed out; Transposed returns a copy. The cache
// is safe for concurrent use.
type TransposeCache[T Element] struct {
	cache *ristretto.Cache[uint64, *Flat[T]]
}

// NewTransposeCache returns a cache bounded by maxBytes of element storage.
func NewTransposeCache[T Element](maxBytes int64) (*TransposeCache[T], error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("NewTransposeCache(%d): %w", maxBytes, ErrBadShape)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, *Flat[T]]{
		NumCounters:        DefaultCacheCounters,
		MaxCost:            maxBytes,
		BufferItems:        DefaultCacheBuffer,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("NewTransposeCache: %w", err)
	}

	return &TransposeCache[T]{cache: cache}, nil
}

// colMajor returns the cached ColMajor copy of b, building and admitting it on a miss.
// hit reports whether the value came from the cache.
func (tc *TransposeCache[T]) colMajor(b *Flat[T]) (cm *Flat[T], hit bool) {
	key := Fingerprint(b)
	if v, ok := tc.cache.Get(key); ok && v.r == b.r && v.c == b.c {
		return v, true
	}

	if b.order == ColMajor {
		cm = b.Clone()
	} else {
		cm = b.WithOrder(ColMajor)
	}
	var zero T
	tc.cache.Set(key, cm, int64(len(cm.data))*int64(unsafe.Sizeof(zero)))
	tc.cache.Wait()

	return cm, false
}

// Transposed returns bᵀ as a RowMajor Flat. The buffer of a ColMajor B is
// exactly the row-major buffer of Bᵀ, so a cached entry serves both.
func (tc *TransposeCache[T]) Transposed(b *Flat[T]) (*Flat[T], error) {
	if b == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	cm, _ := tc.colMajor(b)

	return &Flat[T]{r: b.c, c: b.r, order: RowMajor, data: cm.Data()}, nil
}

// Contains reports whether b's layout is currently cached.
func (tc *TransposeCache[T]) Contains(b *Flat[T]) bool {
	if b == nil {
		return false
	}
	_, ok := tc.cache.Get(Fingerprint(b))

	return ok
}

// Close stops the cache's background goroutines.
func (tc *TransposeCache[T]) Close() { tc.cache.Close() }

// MulCached computes A·B with the tiled kernel, reading B through its
// cached ColMajor layout.
//
// Errors:
//   - ErrNilMatrix (including a nil cache), ErrBadBlockSize, ErrDimensionMismatch.
func MulCached[T Element](a, b *Flat[T], tc *TransposeCache[T], block int) (*Flat[T], error) {
	if tc == nil {
		return nil, matrixErrorf(opMulCached, ErrNilMatrix)
	}
	if err := validateFlatMul(a, b); err != nil {
		return nil, matrixErrorf(opMulCached, err)
	}
	if err := ValidateBlockSize(block); err != nil {
		return nil, matrixErrorf(opMulCached, err)
	}

	bc, _ := tc.colMajor(b)
	a = rowMajorOperand(a)
	out := newFlat[T](a.r, b.c, RowMajor)
	for bi := 0; bi < a.r; bi += block {
		mulFlatRowBlock(out.data, a, bc, bi, block)
	}

	return out, nil
}
