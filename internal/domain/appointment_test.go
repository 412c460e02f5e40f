package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moxie-medspa/backend/internal/domain"
)

func TestParseStatus_Known(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "canceled"} {
		got, err := domain.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(got))
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, s := range []string{"bogus", "", "Scheduled", "COMPLETED", "cancelled"} {
		_, err := domain.ParseStatus(s)

		require.Error(t, err, "status %q", s)
		assert.ErrorIs(t, err, domain.ErrValidation)

		var fe *domain.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "status", fe.Field)
		assert.Contains(t, fe.Message, "scheduled completed canceled")
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to domain.Status
		ok       bool
	}{
		{domain.StatusScheduled, domain.StatusScheduled, true},
		{domain.StatusScheduled, domain.StatusCompleted, true},
		{domain.StatusScheduled, domain.StatusCanceled, true},
		{domain.StatusCompleted, domain.StatusCompleted, true},
		{domain.StatusCompleted, domain.StatusScheduled, false},
		{domain.StatusCompleted, domain.StatusCanceled, false},
		{domain.StatusCanceled, domain.StatusCanceled, true},
		{domain.StatusCanceled, domain.StatusScheduled, false},
		{domain.StatusCanceled, domain.StatusCompleted, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))

			err := tc.from.CheckTransition(tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusScheduled.IsTerminal())
	assert.True(t, domain.StatusCompleted.IsTerminal())
	assert.True(t, domain.StatusCanceled.IsTerminal())
}
