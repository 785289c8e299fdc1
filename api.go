package blake2s

import (
	"errors"
)

// Hasher is a hash.Hash for BLAKE2s.
type Hasher struct {
	h hasher
}

// New returns a new Hasher with the default output size (32 bytes).
func New() *Hasher {
	h := &Hasher{h: hasher{size: Size}}
	h.h.reset()
	return h
}

// NewSized returns a new Hasher with the given output size in [1, 32].
func NewSized(size int) (*Hasher, error) {
	if size < 1 || size > Size {
		return nil, errors.New("invalid digest size")
	}
	h := &Hasher{h: hasher{size: size}}
	h.h.reset()
	return h, nil
}

// NewKeyed returns a new Hasher that uses the key for MAC computation.
// The key must be between 1 and 32 bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	return NewKeyedSized(key, Size)
}

// NewKeyedSized returns a new keyed Hasher with the given output size.
func NewKeyedSized(key []byte, size int) (*Hasher, error) {
	if size < 1 || size > Size {
		return nil, errors.New("invalid digest size")
	}
	if len(key) < 1 || len(key) > KeySize {
		return nil, errors.New("invalid key size")
	}
	h := &Hasher{h: hasher{size: size, keyLen: len(key)}}
	copy(h.h.key[:], key)
	h.h.reset()
	return h, nil
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but accepts a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.update([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return h.h.size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. It does not disturb the
// running state, so more data may be written afterward.
func (h *Hasher) Sum(b []byte) []byte {
	size := h.h.size
	if top := len(b) + size; top <= cap(b) && top >= len(b) {
		h.h.finalize(b[len(b):top])
		return b[:top]
	}

	tmp := make([]byte, size)
	h.h.finalize(tmp)
	return append(b, tmp...)
}

// Sum256 returns the unkeyed 32 byte digest of the data.
func Sum256(data []byte) (sum [32]byte) {
	var h hasher
	h.size = Size
	h.reset()
	h.update(data)
	h.finalize(sum[:])
	return sum
}
