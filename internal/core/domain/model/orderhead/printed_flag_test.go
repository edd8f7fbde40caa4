package orderhead_test

import (
	"testing"

	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrintedFlag(t *testing.T) {
	t.Run("accepts 0 and 1", func(t *testing.T) {
		flag, err := orderhead.NewPrintedFlag(0)
		require.NoError(t, err)
		assert.Equal(t, orderhead.DocumentsNotPrinted, flag)

		flag, err = orderhead.NewPrintedFlag(1)
		require.NoError(t, err)
		assert.Equal(t, orderhead.DocumentsPrinted, flag)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, value := range []int{-1, 2, 10} {
			_, err := orderhead.NewPrintedFlag(value)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, "documentsPrintedFlag", rangeErr.ParamName)
			assert.Equal(t, value, rangeErr.Value)
		}
	})
}

func TestPrintedFlag_IntAndString(t *testing.T) {
	assert.Equal(t, 0, orderhead.DocumentsNotPrinted.Int())
	assert.Equal(t, 1, orderhead.DocumentsPrinted.Int())
	assert.Equal(t, "0", orderhead.DocumentsNotPrinted.String())
	assert.Equal(t, "1", orderhead.DocumentsPrinted.String())
}
