package compress_pure

import (
	"math/bits"

	"github.com/zeebo/blake2s/internal/consts"
	"github.com/zeebo/blake2s/internal/utils"
)

func g(a, b, c, d, mx, my uint32) (uint32, uint32, uint32, uint32) {
	a += b + mx
	d = bits.RotateLeft32(d^a, -16)
	c += d
	b = bits.RotateLeft32(b^c, -12)
	a += b + my
	d = bits.RotateLeft32(d^a, -8)
	c += d
	b = bits.RotateLeft32(b^c, -7)
	return a, b, c, d
}

// Compress applies the BLAKE2s compression function to h with a single
// message block, gathering each round's message words directly through
// the sigma schedule. counter is the total number of bytes processed
// including this block, and f0/f1 are the last-block and last-node
// indicators, all-zero or all-one.
func Compress(h *[8]uint32, block *[64]byte, counter uint64, f0, f1 uint32) {
	var m [16]uint32
	utils.BytesToWords(block, &m)

	v0, v1, v2, v3 := h[0], h[1], h[2], h[3]
	v4, v5, v6, v7 := h[4], h[5], h[6], h[7]
	v8, v9, va, vb := consts.IV[0], consts.IV[1], consts.IV[2], consts.IV[3]
	vc := consts.IV[4] ^ uint32(counter)
	vd := consts.IV[5] ^ uint32(counter>>32)
	ve := consts.IV[6] ^ f0
	vf := consts.IV[7] ^ f1

	for r := 0; r < 10; r++ {
		s := &consts.Sigma[r]

		v0, v4, v8, vc = g(v0, v4, v8, vc, m[s[0]], m[s[1]])
		v1, v5, v9, vd = g(v1, v5, v9, vd, m[s[2]], m[s[3]])
		v2, v6, va, ve = g(v2, v6, va, ve, m[s[4]], m[s[5]])
		v3, v7, vb, vf = g(v3, v7, vb, vf, m[s[6]], m[s[7]])

		v0, v5, va, vf = g(v0, v5, va, vf, m[s[8]], m[s[9]])
		v1, v6, vb, vc = g(v1, v6, vb, vc, m[s[10]], m[s[11]])
		v2, v7, v8, vd = g(v2, v7, v8, vd, m[s[12]], m[s[13]])
		v3, v4, v9, ve = g(v3, v4, v9, ve, m[s[14]], m[s[15]])
	}

	h[0] ^= v0 ^ v8
	h[1] ^= v1 ^ v9
	h[2] ^= v2 ^ va
	h[3] ^= v3 ^ vb
	h[4] ^= v4 ^ vc
	h[5] ^= v5 ^ vd
	h[6] ^= v6 ^ ve
	h[7] ^= v7 ^ vf
}
