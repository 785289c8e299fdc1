package compress_vec4

import "math/bits"

// vu32 is a vector of four 32-bit lanes. The byte-indexed primitives view
// it as 16 bytes in big-endian order within each lane (byte 0 is the most
// significant byte of lane 0), the register layout the message schedule's
// shuffle indices are written for. The layout is a convention of the
// arithmetic below, so it is identical on every host.
type vu32 [4]uint32

// vu8 is a vector of 16 byte-shuffle indices.
type vu8 [16]uint8

func add(a, b vu32) vu32 {
	return vu32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func xor(a, b vu32) vu32 {
	return vu32{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// rotl rotates every lane left by n bits.
func rotl(v vu32, n int) vu32 {
	return vu32{
		bits.RotateLeft32(v[0], n),
		bits.RotateLeft32(v[1], n),
		bits.RotateLeft32(v[2], n),
		bits.RotateLeft32(v[3], n),
	}
}

// rotLanes rotates the vector's lanes left by n positions.
func rotLanes(v vu32, n int) vu32 {
	return vu32{v[n&3], v[(n+1)&3], v[(n+2)&3], v[(n+3)&3]}
}

// byteAt returns byte i of the vector.
func byteAt(v vu32, i uint8) uint8 {
	return uint8(v[i>>2] >> (24 - 8*uint(i&3)))
}

// shuffle builds the vector whose byte i is byte p[i] of v.
func shuffle(v vu32, p vu8) vu32 {
	var out vu32
	for i := 0; i < 16; i++ {
		out[i>>2] |= uint32(byteAt(v, p[i])) << (24 - 8*uint(i&3))
	}
	return out
}

// rotPerm rotates the shuffle indices right by one position.
func rotPerm(p vu8) vu8 {
	var out vu8
	out[0] = p[15]
	copy(out[1:], p[:15])
	return out
}

// selWords assembles each lane by masked select, taking its most
// significant byte from x, the next from y and z, and its least
// significant byte from w.
func selWords(x, y, z, w vu32) vu32 {
	const (
		m0 = 0xff000000
		m1 = 0x00ff0000
		m2 = 0x0000ff00
		m3 = 0x000000ff
	)
	return vu32{
		x[0]&m0 | y[0]&m1 | z[0]&m2 | w[0]&m3,
		x[1]&m0 | y[1]&m1 | z[1]&m2 | w[1]&m3,
		x[2]&m0 | y[2]&m1 | z[2]&m2 | w[2]&m3,
		x[3]&m0 | y[3]&m1 | z[3]&m2 | w[3]&m3,
	}
}

// sldBytes rotates the vector's bytes left by n positions (0 < n < 4),
// crossing lane boundaries.
func sldBytes(v vu32, n uint) vu32 {
	s := 8 * n
	return vu32{
		v[0]<<s | v[1]>>(32-s),
		v[1]<<s | v[2]>>(32-s),
		v[2]<<s | v[3]>>(32-s),
		v[3]<<s | v[0]>>(32-s),
	}
}

// mergeLow interleaves the low word halves of two vectors.
func mergeLow(a, b vu32) vu32 {
	return vu32{a[0], b[0], a[1], b[1]}
}

// mergeHigh interleaves the high word halves of two vectors.
func mergeHigh(a, b vu32) vu32 {
	return vu32{a[2], b[2], a[3], b[3]}
}
