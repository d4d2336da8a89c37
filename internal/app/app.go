package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/pitchsight/trackviz/internal/app/appconfig"
	"github.com/pitchsight/trackviz/internal/app/appcontext"
	"github.com/pitchsight/trackviz/internal/infra"
	"github.com/pitchsight/trackviz/internal/pkg/logger"
	"github.com/pitchsight/trackviz/internal/repo"
	"github.com/pitchsight/trackviz/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(30 * time.Second),
		fx.StopTimeout(time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
