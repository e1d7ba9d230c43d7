//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"parkease/internal/pkg/clock"
	"parkease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentUseCase_ProcessPayment(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewPaymentUseCase(clk)
	userID := uuid.New()

	t.Run("positive amount always settles", func(t *testing.T) {
		p, err := uc.ProcessPayment(ctx, userID, 100, usecase.PaymentTypeBooking)
		require.NoError(t, err)

		assert.Equal(t, "success", p.Status)
		assert.Equal(t, int64(100), p.Amount)
		assert.Equal(t, usecase.PaymentTypeBooking, p.Type)
		assert.Regexp(t, `^pay_1704099600000_`, p.ID)
	})

	t.Run("unknown type defaults to booking", func(t *testing.T) {
		p, err := uc.ProcessPayment(ctx, userID, 50, usecase.PaymentType("refund"))
		require.NoError(t, err)
		assert.Equal(t, usecase.PaymentTypeBooking, p.Type)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		_, err := uc.ProcessPayment(ctx, userID, 0, usecase.PaymentTypeExtension)
		assert.ErrorIs(t, err, usecase.ErrInvalidPaymentAmount)
	})
}
