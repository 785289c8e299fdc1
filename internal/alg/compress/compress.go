package compress

import (
	"github.com/zeebo/blake2s/internal/alg/compress/compress_vec4"
)

// Compress applies the BLAKE2s compression function to h with a single
// 64 byte message block, updating h in place. The vectorized
// implementation is used on every platform; compress_pure is the
// reference it is tested against.
func Compress(h *[8]uint32, block *[64]byte, counter uint64, f0, f1 uint32) {
	compress_vec4.Compress(h, block, counter, f0, f1)
}
