package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"parkease/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

type PaymentType string

const (
	PaymentTypeBooking   PaymentType = "booking"
	PaymentTypeExtension PaymentType = "extension"
)

// Payment is a mock settlement record. The engine trusts a successful result
// without validating funds; real settlement lives outside the system.
type Payment struct {
	ID        string      `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Amount    int64       `json:"amount"`
	Type      PaymentType `json:"type"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type PaymentUseCase interface {
	ProcessPayment(ctx context.Context, userID uuid.UUID, amount int64, paymentType PaymentType) (*Payment, error)
}

type paymentUseCaseImpl struct {
	clk clock.Clock
}

func NewPaymentUseCase(clk clock.Clock) PaymentUseCase {
	return &paymentUseCaseImpl{clk: clk}
}

func (p *paymentUseCaseImpl) ProcessPayment(
	_ context.Context,
	userID uuid.UUID,
	amount int64,
	paymentType PaymentType,
) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}
	if paymentType != PaymentTypeBooking && paymentType != PaymentTypeExtension {
		paymentType = PaymentTypeBooking
	}

	now := p.clk.Now()
	return &Payment{
		ID:        fmt.Sprintf("pay_%d_%s", now.UnixMilli(), paymentNonce()),
		UserID:    userID,
		Amount:    amount,
		Type:      paymentType,
		Status:    "success",
		CreatedAt: now,
	}, nil
}

func paymentNonce() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString()[:8]
	}
	return hex.EncodeToString(buf)
}
