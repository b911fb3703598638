package components

import (
	"careops/internal/handler"
	"careops/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAutomationHandler,
		api.NewSlotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
