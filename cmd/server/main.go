package main

import (
	"github.com/orglens/backend/internal/server"
	"github.com/orglens/backend/internal/util"
	"github.com/orglens/backend/pkg/logger"
	"github.com/orglens/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
