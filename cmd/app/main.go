package main

import (
	"github.com/ZeNuW/filmorate/internal/app"
	"github.com/ZeNuW/filmorate/internal/config"
)

func main() {
	app.Go(config.Load())
}
