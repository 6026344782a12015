package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wolfman30/lalalu-site/cmd/mainconfig"
	"github.com/wolfman30/lalalu-site/internal/app/bootstrap"
	"github.com/wolfman30/lalalu-site/internal/assets"
	appconfig "github.com/wolfman30/lalalu-site/internal/config"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// mediasync uploads a local media directory to MEDIA_BUCKET:
//
//	mediasync [dir]
//
// dir defaults to STATIC_DIR.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	if strings.TrimSpace(cfg.MediaBucket) == "" {
		log.Fatal("MEDIA_BUCKET is required")
	}

	dir := cfg.StaticDir
	if len(os.Args) >= 2 {
		dir = os.Args[1]
	}

	ctx := context.Background()
	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	store := bootstrap.BuildMediaStore(awsCfg, cfg, logger)

	n, err := assets.Sync(ctx, store, dir)
	if err != nil {
		log.Fatalf("sync after %d files: %v", n, err)
	}
	fmt.Printf("synced %d files to s3://%s\n", n, cfg.MediaBucket)
}
