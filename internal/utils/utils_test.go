package utils

import (
	"testing"
	"unsafe"

	"github.com/zeebo/assert"
	"github.com/zeebo/blake2s/internal/consts"
)

func TestBytesToWords(t *testing.T) {
	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	for i := range words {
		exp := uint32(4*i) | uint32(4*i+1)<<8 | uint32(4*i+2)<<16 | uint32(4*i+3)<<24
		assert.Equal(t, exp, words[i])
	}

	if consts.IsLittleEndian {
		assert.Equal(t, *(*[16]uint32)(unsafe.Pointer(&bytes[0])), words)
	}
}

func TestWordsToBytes(t *testing.T) {
	var words [8]uint32
	for i := range words {
		words[i] = uint32(4*i) | uint32(4*i+1)<<8 | uint32(4*i+2)<<16 | uint32(4*i+3)<<24
	}

	var bytes [32]uint8
	WordsToBytes(&words, &bytes)

	for i := range bytes {
		assert.Equal(t, uint8(i), bytes[i])
	}
}
