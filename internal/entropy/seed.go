// Package entropy derives run seeds. Seeds feed deterministic generators;
// only the initial draw touches the OS entropy pool.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a fresh random seed from crypto/rand, falling back to the
// wall clock if the entropy pool is unreadable.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Warn("crypto/rand unavailable, seeding from clock", "error", err)
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
