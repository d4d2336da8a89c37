package service

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	opts := []fx.Option{
		fx.Provide(
			NewMatch,
			NewAnimation,
			NewPossession,
		),
	}
	return fx.Module("service", opts...)
}
