package pixel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResolve(t *testing.T) {
	r, err := NewRecord([]float64{111.0, 143.0},
		WithVariances([]float64{23.0, 27.0}),
		WithSelector(BySlow{}),
		WithUnits("counts"),
	)
	require.NoError(t, err)

	v, err := r.Resolve(ID{Bank: "x", I: 1, J: 0})
	require.NoError(t, err)
	assert.Equal(t, Value{Value: 143.0, Variance: 27.0}, v)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "counts", r.Units())
	assert.True(t, r.HasVariances())
	assert.Equal(t, BySlow{}, r.Selector())
}

func TestRecordWithoutVariances(t *testing.T) {
	r, err := NewRecord([]float64{1.5, 2.5, 3.5}, WithSelector(ByFast{}))
	require.NoError(t, err)
	assert.False(t, r.HasVariances())

	for j, want := range []float64{1.5, 2.5, 3.5} {
		v, err := r.Resolve(ID{Bank: "x", J: j})
		require.NoError(t, err)
		assert.Equal(t, want, v.Value)
		assert.Zero(t, v.Variance)
	}
}

func TestRecordErrors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewRecord([]float64{1, 2}, WithVariances([]float64{1}))
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("missing selector", func(t *testing.T) {
		r, err := NewRecord([]float64{1})
		require.NoError(t, err)
		_, err = r.Resolve(ID{Bank: "x"})
		assert.ErrorIs(t, err, ErrMissingSelector)
	})

	t.Run("offset out of range", func(t *testing.T) {
		r, err := NewRecord([]float64{1, 2}, WithSelector(BySlow{}))
		require.NoError(t, err)
		_, err = r.Resolve(ID{Bank: "x", I: 2})
		assert.ErrorIs(t, err, ErrMissingValue)
		_, err = r.Resolve(ID{Bank: "x", I: -1})
		assert.ErrorIs(t, err, ErrMissingValue)
	})

	t.Run("no value table", func(t *testing.T) {
		r, err := NewRecord(nil, WithSelector(ByZero{}))
		require.NoError(t, err)
		_, err = r.Resolve(ID{Bank: "x"})
		assert.ErrorIs(t, err, ErrMissingValue)
	})
}

func TestRecordConcurrentResolve(t *testing.T) {
	values := make([]float64, 64)
	for i := range values {
		values[i] = float64(i) * 0.5
	}
	r, err := NewRecord(values, WithSelector(ByCombined{RowStride: 8}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				v, err := r.Resolve(ID{Bank: "b", I: i, J: j})
				assert.NoError(t, err)
				assert.Equal(t, float64(i*8+j)*0.5, v.Value)
			}
		}()
	}
	wg.Wait()
}
