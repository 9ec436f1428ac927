package randutil

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrom(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		w, err := ReadFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0x80}))
		require.NoError(t, err)
		assert.Equal(t, uint64(0x8000000000000001), w)
	})

	t.Run("short read", func(t *testing.T) {
		_, err := ReadFrom(bytes.NewReader([]byte{1, 2, 3}))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		assert.Contains(t, err.Error(), "read random seed")
	})
}

func TestRead64(t *testing.T) {
	_, err := Read64()
	require.NoError(t, err)
}

func TestClockWord(t *testing.T) {
	clock := quartz.NewMock(t)
	at := time.Unix(1900000000, 5)
	clock.Set(at)

	assert.Equal(t, uint64(at.UnixNano()), ClockWord(clock))
}
