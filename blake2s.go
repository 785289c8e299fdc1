package blake2s

import (
	"github.com/zeebo/blake2s/internal/alg/compress"
	"github.com/zeebo/blake2s/internal/consts"
	"github.com/zeebo/blake2s/internal/utils"
)

//
// hasher contains state for a blake2s hash
//

type hasher struct {
	h        [8]uint32
	t        uint64
	len      int
	size     int
	keyLen   int
	lastNode bool
	key      [consts.BlockLen]byte
	buf      [consts.BlockLen]byte
}

func (a *hasher) reset() {
	a.h = consts.IV
	a.h[0] ^= uint32(a.size) | uint32(a.keyLen)<<8 | 1<<16 | 1<<24
	a.t = 0
	a.len = 0

	// a keyed hash consumes the zero padded key as its first block
	if a.keyLen > 0 {
		a.buf = a.key
		a.len = consts.BlockLen
	}
}

func (a *hasher) update(buf []byte) {
	for len(buf) > 0 {
		// a buffered block is only compressed once more input arrives:
		// the final block has to be compressed with the finalization
		// flag set, and we cannot know a block is final until either
		// more data or finalize shows up.
		if a.len == consts.BlockLen {
			a.t += consts.BlockLen
			compress.Compress(&a.h, &a.buf, a.t, 0, 0)
			a.len = 0
		}

		if a.len == 0 && len(buf) > consts.BlockLen {
			a.t += consts.BlockLen
			compress.Compress(&a.h, (*[consts.BlockLen]byte)(buf), a.t, 0, 0)
			buf = buf[consts.BlockLen:]
			continue
		}

		n := copy(a.buf[a.len:], buf)
		a.len += n
		buf = buf[n:]
	}
}

// finalize writes the digest prefix of len(p) bytes into p. It operates
// on a copy of the state, so the hasher can keep accepting writes.
func (a *hasher) finalize(p []byte) {
	tmp := *a

	for i := tmp.len; i < consts.BlockLen; i++ {
		tmp.buf[i] = 0
	}
	tmp.t += uint64(tmp.len)

	f1 := uint32(0)
	if tmp.lastNode {
		f1 = ^uint32(0)
	}
	compress.Compress(&tmp.h, &tmp.buf, tmp.t, ^uint32(0), f1)

	var out [consts.Size]byte
	utils.WordsToBytes(&tmp.h, &out)
	copy(p, out[:tmp.size])
}
