package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/reusedev/plant-hub/config"
	"github.com/reusedev/plant-hub/internal/modules/ai"
	"github.com/reusedev/plant-hub/internal/modules/ai/gemini"
	"github.com/reusedev/plant-hub/internal/modules/cache"
	"github.com/reusedev/plant-hub/internal/modules/history"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/storage"
	"github.com/reusedev/plant-hub/internal/service/http"
	"github.com/reusedev/plant-hub/tools"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	// .env is optional, GEMINI_API_KEY may already be in the environment
	_ = godotenv.Load()
	config.Init(tools.PanicOnError(os.ReadFile(configPath)))
	logs.InitLogger()

	if err := storage.Init(config.GConfig); err != nil {
		panic(err)
	}
	ai.GModel = tools.PanicOnError(gemini.NewModel(context.Background(), config.GConfig.Gemini))
	history.Init(config.GConfig.HistoryFile)
	history.GStore.Attach(cache.HistoryInvalidator{})

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		sig := <-ch
		logs.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
		os.Exit(0)
	}(osSignal)
	http.Serve(httpPort)
}
