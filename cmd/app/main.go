package main

import (
	"guesthouse/config"
	"guesthouse/di"
	"guesthouse/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
