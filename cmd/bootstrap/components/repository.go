package components

import (
	"parkease/internal/infra/repository"
	"parkease/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(usecase.CatalogRepository)),
		),
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(usecase.SlotAllocator)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
	),
)
