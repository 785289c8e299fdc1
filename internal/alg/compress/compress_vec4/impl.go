package compress_vec4

import (
	"github.com/zeebo/blake2s/internal/consts"
)

// The 16-word working state is held as four vectors, one per row of the
// state matrix, so each lane holds one column:
//
//	va = v0  v1  v2  v3
//	vb = v4  v5  v6  v7
//	vc = v8  v9  v10 v11
//	vd = v12 v13 v14 v15
//
// A single g call then mixes all four columns at once. Rotating the
// lanes of vb, vc, vd by 1, 2, 3 before the second g call makes the same
// column-wise evaluation mix the four diagonals instead.

// g is the mixing primitive applied to four columns in parallel. The
// left rotations by 16, 20, 24 and 25 are the standard BLAKE2s right
// rotations by 16, 12, 8 and 7.
func g(a, b, c, d, x, y vu32) (vu32, vu32, vu32, vu32) {
	a = add(add(a, b), x)
	d = rotl(xor(d, a), 16)
	c = add(c, d)
	b = rotl(xor(b, c), 20)
	a = add(add(a, b), y)
	d = rotl(xor(d, a), 24)
	c = add(c, d)
	b = rotl(xor(b, c), 25)
	return a, b, c, d
}

// sliceBytes transposes the block into four byte planes: plane 0 holds
// the most significant byte of every little-endian message word, plane 3
// the least significant. The schedule shuffles whole planes and then
// reassembles words, replacing sixteen scalar gathers per round.
func sliceBytes(block *[64]byte, mv *[4]vu32) {
	for i := 0; i < 16; i++ {
		shift := 24 - 8*uint(i&3)
		mv[0][i>>2] |= uint32(block[4*i+3]) << shift
		mv[1][i>>2] |= uint32(block[4*i+2]) << shift
		mv[2][i>>2] |= uint32(block[4*i+1]) << shift
		mv[3][i>>2] |= uint32(block[4*i+0]) << shift
	}
}

// schedule produces the four operand vectors for round r: (m1, m2) feed
// the column half with message words sigma[r][0..7], in lane order
// (sigma[0], sigma[2], sigma[4], sigma[6]) and (sigma[1], sigma[3],
// sigma[5], sigma[7]); (m3, m4) likewise feed the diagonal half with
// sigma[r][8..15]. Each byte plane is shuffled by the round permutation
// rotated right once per plane, then the planes are recombined with a
// masked word select, a byte realignment, and even/odd word merges.
func schedule(mv *[4]vu32, r int) (m1, m2, m3, m4 vu32) {
	perm := vu8(consts.Sigma[r])
	s1 := shuffle(mv[0], perm)
	perm = rotPerm(perm)
	s2 := shuffle(mv[1], perm)
	perm = rotPerm(perm)
	s3 := shuffle(mv[2], perm)
	perm = rotPerm(perm)
	s4 := shuffle(mv[3], perm)

	ra := selWords(s1, s2, s3, s4)              // sigma[0], sigma[4], sigma[8],  sigma[12]
	rc := sldBytes(selWords(s4, s1, s2, s3), 1) // sigma[1], sigma[5], sigma[9],  sigma[13]
	rb := sldBytes(selWords(s3, s4, s1, s2), 2) // sigma[2], sigma[6], sigma[10], sigma[14]
	rd := sldBytes(selWords(s2, s3, s4, s1), 3) // sigma[3], sigma[7], sigma[11], sigma[15]

	m1 = mergeLow(ra, rb)
	m2 = mergeLow(rc, rd)
	m3 = mergeHigh(ra, rb)
	m4 = mergeHigh(rc, rd)
	return m1, m2, m3, m4
}

// Compress applies the BLAKE2s compression function to h with a single
// message block. counter is the total number of bytes processed including
// this block, and f0/f1 are the last-block and last-node indicators,
// all-zero or all-one.
func Compress(h *[8]uint32, block *[64]byte, counter uint64, f0, f1 uint32) {
	var mv [4]vu32
	sliceBytes(block, &mv)

	va := vu32{h[0], h[1], h[2], h[3]}
	vb := vu32{h[4], h[5], h[6], h[7]}
	vc := vu32{consts.IV[0], consts.IV[1], consts.IV[2], consts.IV[3]}
	vd := xor(
		vu32{consts.IV[4], consts.IV[5], consts.IV[6], consts.IV[7]},
		vu32{uint32(counter), uint32(counter >> 32), f0, f1},
	)

	for r := 0; r < 10; r++ {
		m1, m2, m3, m4 := schedule(&mv, r)

		va, vb, vc, vd = g(va, vb, vc, vd, m1, m2)

		vb = rotLanes(vb, 1)
		vc = rotLanes(vc, 2)
		vd = rotLanes(vd, 3)

		va, vb, vc, vd = g(va, vb, vc, vd, m3, m4)

		vb = rotLanes(vb, 3)
		vc = rotLanes(vc, 2)
		vd = rotLanes(vd, 1)
	}

	va = xor(va, vc)
	vb = xor(vb, vd)

	h[0] ^= va[0]
	h[1] ^= va[1]
	h[2] ^= va[2]
	h[3] ^= va[3]
	h[4] ^= vb[0]
	h[5] ^= vb[1]
	h[6] ^= vb[2]
	h[7] ^= vb[3]
}
