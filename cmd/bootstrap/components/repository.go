package components

import (
	repo_impl "careops/internal/infra/repository"
	"careops/internal/usecase/commands"
	"careops/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(commands.ScheduleStore)),
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			repo_impl.NewContactRepository,
			fx.As(new(commands.ContactStore)),
		),
		fx.Annotate(
			repo_impl.NewRuleRepository,
			fx.As(new(commands.RuleStore)),
		),
		fx.Annotate(
			repo_impl.NewLogRepository,
			fx.As(new(commands.LogStore)),
		),
		fx.Annotate(
			repo_impl.NewFormRepository,
			fx.As(new(commands.FormStore)),
		),
		fx.Annotate(
			repo_impl.NewConversationRepository,
			fx.As(new(commands.ConversationStore)),
		),
		fx.Annotate(
			repo_impl.NewInboxRepository,
			fx.As(new(commands.InboxRecorder)),
		),
	),
)
