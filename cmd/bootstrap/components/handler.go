package components

import (
	"context"

	"parkease/internal/handler"
	"parkease/internal/handler/api"
	"parkease/internal/handler/middleware"
	"parkease/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewBookingHandler,
		newTokenValidator,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		seedCatalog,
		handler.NewRouter,
	),
)

func newTokenValidator(authUseCase usecase.AuthUseCase) middleware.TokenValidator {
	return authUseCase
}

// seedCatalog runs the idempotent seed before the router starts serving, the
// same boot-time initialization the engine has always had.
func seedCatalog(catalogUseCase usecase.CatalogUseCase) error {
	return catalogUseCase.Seed(context.Background())
}
