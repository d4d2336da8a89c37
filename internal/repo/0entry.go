package repo

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	opts := []fx.Option{
		fx.Provide(
			NewMatch,
			NewTracking,
			NewMatchEvent,
		),
	}
	return fx.Module("repo", opts...)
}
