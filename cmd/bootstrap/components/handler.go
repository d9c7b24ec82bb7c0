package components

import (
	"trolley-inventory/internal/handler"
	"trolley-inventory/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBatchHandler,
		api.NewDrawerStatusHandler,
		api.NewRestockHistoryHandler,
		api.NewReferenceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
