package components

import (
	"trolley-inventory/internal/infra/db"
	"trolley-inventory/internal/infra/readstore"
	"trolley-inventory/internal/infra/uow"
	"trolley-inventory/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBatchReadStore,
			fx.As(new(queries.BatchReadStore)),
		),
		fx.Annotate(
			readstore.NewLoadReadStore,
			fx.As(new(queries.LoadReadStore)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
		fx.Annotate(
			readstore.NewPerformanceReadStore,
			fx.As(new(queries.PerformanceReadStore)),
		),
		fx.Annotate(
			readstore.NewDrawerReadStore,
			fx.As(new(queries.DrawerReadStore)),
		),
		fx.Annotate(
			readstore.NewEmployeeReadStore,
			fx.As(new(queries.EmployeeReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
