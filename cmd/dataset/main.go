// Command dataset prints all stored self-contained feedback entries as
// newline-delimited JSON on stdout, identifiers stripped.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/wallmod/core/internal/config"
	"github.com/wallmod/core/internal/modules/dataset"
	"github.com/wallmod/core/internal/modules/feedback"
	"github.com/wallmod/core/internal/pkg/blobstore"
	"go.uber.org/zap"
)

const exportLimit = 1000

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	blob, err := blobstore.NewS3(cfg.S3)
	if err != nil {
		logger.Fatal("failed to open blob store", zap.Error(err))
	}

	store := feedback.NewStore(blob, cfg.Namespace)
	items, err := store.ListRequests(context.Background(), exportLimit)
	if err != nil {
		logger.Fatal("failed to list feedback", zap.Error(err))
	}

	jsonl, err := dataset.FormatJSONL(items)
	if err != nil {
		logger.Fatal("failed to format dataset", zap.Error(err))
	}
	fmt.Println(jsonl)
}
