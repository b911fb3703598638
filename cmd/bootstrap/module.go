package bootstrap

import (
	"careops/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	components.RepositoryModule,
	components.ChannelModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
