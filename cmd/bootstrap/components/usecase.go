package components

import (
	"careops/internal/pkg/clock"
	"careops/internal/pkg/config"
	"careops/internal/pkg/retry"
	"careops/internal/usecase/commands"
	"careops/internal/usecase/queries"

	"log/slog"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, logger *slog.Logger) *retry.Executor {
		return retry.NewExecutor(cfg.Automation, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewAutomationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
	),
)
