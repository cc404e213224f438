package commitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitment(t *testing.T) {
	parts := [][]byte{[]byte("secp256k1"), {0x01, 0x02}, {0x03}}

	comm, err := New(parts...)
	require.NoError(t, err)
	assert.Len(t, comm.C, 32)
	assert.Len(t, comm.D, SaltSize)

	assert.True(t, Verify(comm.C, comm.D, parts...))
}

func TestCommitmentVerifyFailed(t *testing.T) {
	parts := [][]byte{{0x01, 0x02}, {0x03}}
	comm, err := New(parts...)
	require.NoError(t, err)

	t.Run("wrong parts", func(t *testing.T) {
		assert.False(t, Verify(comm.C, comm.D, []byte{0x01, 0x02}, []byte{0x04}))
	})

	t.Run("same bytes split differently", func(t *testing.T) {
		assert.False(t, Verify(comm.C, comm.D, []byte{0x01}, []byte{0x02, 0x03}))
		assert.False(t, Verify(comm.C, comm.D, []byte{0x01, 0x02, 0x03}))
	})

	t.Run("wrong salt", func(t *testing.T) {
		other, err := New(parts...)
		require.NoError(t, err)
		assert.NotEqual(t, comm.C, other.C)
		assert.False(t, Verify(comm.C, other.D, parts...))
	})

	t.Run("malformed", func(t *testing.T) {
		assert.False(t, Verify(comm.C[:16], comm.D, parts...))
		assert.False(t, Verify(comm.C, nil, parts...))
	})
}
