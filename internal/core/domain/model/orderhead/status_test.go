package orderhead_test

import (
	"testing"

	"mfgorder/internal/core/domain/model/orderhead"
	"mfgorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []orderhead.Status{
		orderhead.Planned,
		orderhead.Released,
		orderhead.Started,
		orderhead.Completed,
	}
	for _, status := range valid {
		require.NoError(t, status.Validate(), status.String())
	}

	invalid := []orderhead.Status{orderhead.Unknown, orderhead.Status(-1), orderhead.Status(99)}
	for _, status := range invalid {
		err := status.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status orderhead.Status
		want   string
	}{
		{orderhead.Unknown, "Unknown"},
		{orderhead.Planned, "Planned"},
		{orderhead.Released, "Released"},
		{orderhead.Started, "Started"},
		{orderhead.Completed, "Completed"},
		{orderhead.Status(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatus_IsPrintable(t *testing.T) {
	assert.False(t, orderhead.Planned.IsPrintable())
	assert.True(t, orderhead.Released.IsPrintable())
	assert.True(t, orderhead.Started.IsPrintable())
	assert.False(t, orderhead.Completed.IsPrintable())
	assert.False(t, orderhead.Unknown.IsPrintable())
}
