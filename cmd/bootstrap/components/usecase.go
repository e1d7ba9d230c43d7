package components

import (
	"parkease/internal/domain/booking"
	"parkease/internal/pkg/clock"
	"parkease/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		booking.NewIssuer,
		usecase.NewAuthUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewBookingUseCase,
		usecase.NewPaymentUseCase,
	),
)
