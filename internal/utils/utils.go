package utils

import (
	"encoding/binary"
	"unsafe"

	"github.com/zeebo/blake2s/internal/consts"
)

// BytesToWords parses a message block into 16 little-endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	if consts.IsLittleEndian {
		*words = *(*[16]uint32)(unsafe.Pointer(bytes))
		return
	}

	words[0] = binary.LittleEndian.Uint32(bytes[0*4:])
	words[1] = binary.LittleEndian.Uint32(bytes[1*4:])
	words[2] = binary.LittleEndian.Uint32(bytes[2*4:])
	words[3] = binary.LittleEndian.Uint32(bytes[3*4:])
	words[4] = binary.LittleEndian.Uint32(bytes[4*4:])
	words[5] = binary.LittleEndian.Uint32(bytes[5*4:])
	words[6] = binary.LittleEndian.Uint32(bytes[6*4:])
	words[7] = binary.LittleEndian.Uint32(bytes[7*4:])
	words[8] = binary.LittleEndian.Uint32(bytes[8*4:])
	words[9] = binary.LittleEndian.Uint32(bytes[9*4:])
	words[10] = binary.LittleEndian.Uint32(bytes[10*4:])
	words[11] = binary.LittleEndian.Uint32(bytes[11*4:])
	words[12] = binary.LittleEndian.Uint32(bytes[12*4:])
	words[13] = binary.LittleEndian.Uint32(bytes[13*4:])
	words[14] = binary.LittleEndian.Uint32(bytes[14*4:])
	words[15] = binary.LittleEndian.Uint32(bytes[15*4:])
}

// WordsToBytes serializes a hash state into little-endian digest bytes.
func WordsToBytes(words *[8]uint32, bytes *[32]uint8) {
	if consts.IsLittleEndian {
		*bytes = *(*[32]uint8)(unsafe.Pointer(words))
		return
	}

	binary.LittleEndian.PutUint32(bytes[0*4:], words[0])
	binary.LittleEndian.PutUint32(bytes[1*4:], words[1])
	binary.LittleEndian.PutUint32(bytes[2*4:], words[2])
	binary.LittleEndian.PutUint32(bytes[3*4:], words[3])
	binary.LittleEndian.PutUint32(bytes[4*4:], words[4])
	binary.LittleEndian.PutUint32(bytes[5*4:], words[5])
	binary.LittleEndian.PutUint32(bytes[6*4:], words[6])
	binary.LittleEndian.PutUint32(bytes[7*4:], words[7])
}
