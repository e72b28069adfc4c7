package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/auth/google"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pincode"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger

	Auth         usecase.AuthUsecase
	Products     usecase.ProductUsecase
	Cart         usecase.CartUsecase
	Wishlist     usecase.WishlistUsecase
	Reviews      usecase.ReviewUsecase
	Orders       usecase.OrderUsecase
	Verification usecase.VerificationUsecase
	Pincode      service.PincodeLookup
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectGateway(),
		injectStore(),
		fx.Invoke(
			run,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		persistence.New,
		validation.New,
		auth.NewJWTInspector,
		google.NewVerifier,
		pincode.NewClient,
		api.NewClient,
	)
}

func injectGateway() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthGateway,
			api.NewProfileGateway,
			api.NewProductGateway,
			api.NewCartGateway,
			api.NewWishlistGateway,
			api.NewReviewGateway,
			api.NewOrderGateway,
		),
	)
}

func injectStore() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthStore,
			impl.NewProductStore,
			impl.NewCartStore,
			impl.NewWishlistStore,
			impl.NewReviewStore,
			impl.NewOrderStore,
			impl.NewVerificationFlow,
		),
	)
}

// run executes the requested subcommand once the app is started and then
// shuts the app down with the command's exit code.
func run(params runParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				code := 0
				if err := runSubcommand(context.Background(), &params); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					code = 1
				}
				_ = params.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
	})
}
