package components

import (
	"trolley-inventory/internal/pkg/clock"
	"trolley-inventory/internal/usecase/commands"
	"trolley-inventory/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBatchCommands,
		commands.NewLoadCommands,
		commands.NewRestockCommands,
		commands.NewReferenceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBatchQueries,
		queries.NewLoadQueries,
		queries.NewHistoryQueries,
		queries.NewPerformanceQueries,
		queries.NewDrawerQueries,
		queries.NewEmployeeQueries,
	),
)
