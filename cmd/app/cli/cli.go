package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/pitchsight/trackviz/internal/app"
	"github.com/pitchsight/trackviz/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
