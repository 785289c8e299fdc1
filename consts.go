package blake2s

import "github.com/zeebo/blake2s/internal/consts"

const (
	// Size is the default digest length in bytes.
	Size = consts.Size

	// BlockSize is the compression block length in bytes.
	BlockSize = consts.BlockLen

	// KeySize is the maximum key length in bytes.
	KeySize = consts.KeyLen
)
