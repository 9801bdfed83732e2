package app

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// rollSeed draws a roll RNG seed from crypto/rand so restarts do not
// replay the same roll sequence.
func rollSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
