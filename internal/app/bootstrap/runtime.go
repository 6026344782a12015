package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/lalalu-site/internal/assets"
	appconfig "github.com/wolfman30/lalalu-site/internal/config"
	"github.com/wolfman30/lalalu-site/internal/promo"
	"github.com/wolfman30/lalalu-site/internal/site"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildPromoStores picks where promo dismissals are remembered. Redis is used
// when SESSION_STORE=redis and a client is available; otherwise markers live
// in browser-session cookies.
func BuildPromoStores(cfg *appconfig.Config, redisClient *redis.Client, logger *logging.Logger) site.StoreFunc {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.UseRedisSessions() {
		if redisClient != nil {
			logger.Info("promo markers stored in redis", "ttl", cfg.SessionTTL)
			return site.SharedStore(promo.NewRedisStore(redisClient, cfg.SessionTTL))
		}
		logger.Warn("SESSION_STORE=redis but redis is unavailable; using cookies")
	}
	return site.CookieStores(cfg.CookieSecure)
}

// BuildCampaign returns the promo campaign with its end time taken from
// PROMO_ENDS_AT in the clinic time zone.
func BuildCampaign(cfg *appconfig.Config) (promo.Campaign, error) {
	loc := cfg.ClinicLocation()
	c := promo.NewYear2026(loc)
	if key := strings.TrimSpace(cfg.PromoKey); key != "" {
		c.Key = key
	}
	if raw := strings.TrimSpace(cfg.PromoEndsAt); raw != "" {
		end, err := promo.ParseEnd(raw, loc)
		if err != nil {
			return promo.Campaign{}, fmt.Errorf("bootstrap: %w", err)
		}
		c.EndsAt = end
	}
	return c, nil
}

// BuildMediaStore returns the S3-backed media store, or a disabled store
// when MEDIA_BUCKET is unset.
func BuildMediaStore(awsCfg aws.Config, cfg *appconfig.Config, logger *logging.Logger) *assets.MediaStore {
	if strings.TrimSpace(cfg.MediaBucket) == "" {
		return assets.NewMediaStore(nil, "", "", logger)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// LocalStack and MinIO only route path-style requests.
		if cfg.AWSEndpointOverride != "" {
			o.UsePathStyle = true
		}
	})
	return assets.NewMediaStore(client, cfg.MediaBucket, cfg.MediaPrefix, logger)
}

// BuildResolver roots asset URLs at ASSET_BASE_URL when set. Otherwise media
// is linked through the /media handler when a bucket is configured, and from
// the local static mount when not.
func BuildResolver(cfg *appconfig.Config) assets.Resolver {
	base := strings.TrimSpace(cfg.AssetBaseURL)
	if base == "" && strings.TrimSpace(cfg.MediaBucket) != "" {
		base = assets.MediaPrefix
	}
	return assets.NewResolver(assets.DefaultStaticPrefix, base)
}
