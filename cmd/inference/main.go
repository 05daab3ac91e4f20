package main

import (
	"log"
	"time"

	"movie-reviews/cmd"
	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/utils"

	"github.com/uber-go/tally/v4"
	"github.com/uber-go/tally/v4/prometheus"
	"go.uber.org/zap"
)

const serviceName = "inference"

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, serviceName, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	reporter := prometheus.NewReporter(prometheus.Options{})
	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Tags:           map[string]string{"service": serviceName},
		CachedReporter: reporter,
	}, 10*time.Second)
	defer closer.Close()

	// A model that fails to load leaves the service up in degraded mode
	var model sentiment.Classifier
	device, downgraded := sentiment.ResolveDevice(config.Model.Device)
	if downgraded {
		logger.Warn("Requested device unavailable, using cpu",
			zap.String("requested", config.Model.Device))
	}

	nb, err := sentiment.LoadModel(config.Model.Path, device)
	if err != nil {
		logger.Error("Failed to load sentiment model", zap.Error(err), zap.String("path", config.Model.Path))
	} else {
		model = nb
		logger.Info("Sentiment model loaded",
			zap.String("model", nb.Name()),
			zap.String("device", nb.Device()))
	}

	router := wire.WiringInference(model, scope, reporter.HTTPHandler(), logger)

	if err := cmd.APIServer(router, config.Inference.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
	}
}
