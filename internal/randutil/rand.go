// Package randutil reads seed material from the host.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/coder/quartz"
)

// Read64 reads a 64-bit word from the operating system's entropy source.
func Read64() (uint64, error) {
	return ReadFrom(crand.Reader)
}

// ReadFrom reads a little-endian 64-bit word from r.
func ReadFrom(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ClockWord returns the clock's current time in nanoseconds. It is predictable
// and only meant as fallback material when the entropy source fails.
func ClockWord(clock quartz.Clock) uint64 {
	return uint64(clock.Now().UnixNano())
}
