package components

import (
	channel_impl "careops/internal/infra/channel"
	"careops/internal/pkg/config"
	"careops/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ChannelModule = fx.Module("channels",
	fx.Provide(
		func(cfg config.Config) config.ChannelsConfig { return cfg.Channels },
		fx.Annotate(
			channel_impl.NewCalendarChannel,
			fx.As(new(commands.CalendarChannel)),
		),
		fx.Annotate(
			channel_impl.NewNotificationChannel,
			fx.As(new(commands.NotificationChannel)),
		),
		NewEngineChannels,
	),
)

// NewEngineChannels bundles the outbound messaging collaborators for the
// trigger engine. Email and WhatsApp share the MessagingChannel interface so
// they cannot be registered as separate fx types directly.
func NewEngineChannels(cfg config.Config, rdb *redis.Client, inbox commands.InboxRecorder) commands.EngineChannels {
	return commands.EngineChannels{
		Email:    channel_impl.NewEmailChannel(cfg.Channels),
		WhatsApp: channel_impl.NewWhatsAppChannel(cfg.Channels),
		Notifier: channel_impl.NewNotificationChannel(rdb),
		Inbox:    inbox,
	}
}
