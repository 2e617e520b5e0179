package nodeid

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/c360/semstreams-opcua/errors"
)

func TestAllocator_Sequence(t *testing.T) {
	a := NewAllocator(100)

	n, err := a.Next(2)
	require.NoError(t, err)
	assert.Equal(t, NewNumeric(2, 100), n)

	// one sequence shared across namespaces
	n, err = a.Next(5)
	require.NoError(t, err)
	assert.Equal(t, NewNumeric(5, 101), n)
	assert.Equal(t, uint64(102), a.Peek())
}

func TestAllocator_Concurrent(t *testing.T) {
	const workers = 16
	const perWorker = 500

	a := NewAllocator(1)
	results := make([][]uint32, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				n, err := a.Next(uint16(w))
				if err != nil {
					return err
				}
				v, _ := n.AsUint32()
				results[w] = append(results[w], v)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[uint32]bool, workers*perWorker)
	for _, vs := range results {
		for _, v := range vs {
			assert.False(t, seen[v], "value %d handed out twice", v)
			seen[v] = true
		}
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, uint64(1+workers*perWorker), a.Peek())
}

func TestAllocator_Exhaustion(t *testing.T) {
	a := NewAllocator(math.MaxUint32)

	n, err := a.Next(0)
	require.NoError(t, err)
	assert.Equal(t, NewNumeric(0, math.MaxUint32), n)

	for i := 0; i < 2; i++ {
		_, err = a.Next(0)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.ErrAllocatorExhausted))
		assert.True(t, errors.IsFatal(err))
	}
}

func TestNextNumeric(t *testing.T) {
	first, err := NextNumeric(1)
	require.NoError(t, err)
	second, err := NextNumeric(1)
	require.NoError(t, err)

	a, _ := first.AsUint32()
	b, _ := second.AsUint32()
	assert.Greater(t, b, a)
	assert.GreaterOrEqual(t, a, uint32(1))
	assert.Same(t, DefaultAllocator(), DefaultAllocator())
}
