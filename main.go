package main

import (
	"github.com/pitchsight/trackviz/cmd/app"
)

func main() {
	app.Run()
}
