package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/pinehollow/storefront/config"
	"github.com/pinehollow/storefront/internal/adapters/idp"
	"github.com/pinehollow/storefront/internal/adapters/mongostore"
	"github.com/pinehollow/storefront/internal/adapters/smtpmailer"
	"github.com/pinehollow/storefront/internal/ports"
	"github.com/pinehollow/storefront/internal/ratelimit"
	"github.com/pinehollow/storefront/internal/service"
	"github.com/pinehollow/storefront/internal/session"
)

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	AdminAuth  *service.AdminAuthService
	BearerAuth *service.BearerAuthService
	Notifier   *service.NotificationService
	Content    *service.ContentService
}

// ServiceDeps groups the external dependencies services are built from.
type ServiceDeps struct {
	Config config.AppConfig
	Mongo  *mongo.Database
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// BuildServices wires adapters into services. Optional dependencies that
// are not configured degrade the corresponding feature rather than failing
// startup; missing required secrets degrade to fail-safe denial inside the
// services themselves.
func BuildServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	var limiter ratelimit.Limiter
	if cfg.Auth.RateLimit == config.RateLimitStoreRedis && deps.Redis != nil {
		limiter = ratelimit.NewRedisLimiter(deps.Redis, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
		logger.Info("login rate limiter using redis")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
	}

	var codec *session.Codec
	if cfg.Auth.SessionSecret != "" {
		var err error
		codec, err = session.NewCodec(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build session codec: %w", err)
		}
	} else {
		// No signing secret means no sessions can be issued or verified.
		// Admin login stays reachable but always denies.
		logger.Warn("ADMIN_SESSION_SECRET not set, admin sessions disabled")
	}
	if cfg.Auth.Password == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin login disabled")
	}

	adminAuth := service.NewAdminAuthService(service.AdminAuthServiceOptions{
		Password: cfg.Auth.Password,
		Codec:    codec,
		Limiter:  limiter,
		Logger:   logger,
	})

	var verifier ports.TokenVerifier
	if cfg.IdP.IssuerURL != "" {
		v, err := idp.NewVerifier(ctx, idp.Config{
			IssuerURL: cfg.IdP.IssuerURL,
			Timeout:   cfg.IdP.Timeout,
		})
		if err != nil {
			// Discovery failure leaves the bearer path denying requests;
			// the rest of the app still comes up.
			logger.Warn("identity provider discovery failed, bearer auth disabled", "error", err)
		} else {
			verifier = v
		}
	}

	var directory ports.AdminDirectory
	var contentStore ports.ContentStore
	if deps.Mongo != nil {
		directory = mongostore.NewDirectory(deps.Mongo)
		contentStore = mongostore.NewContentStore(deps.Mongo)
	}

	bearerAuth := service.NewBearerAuthService(service.BearerAuthServiceOptions{
		Verifier:             verifier,
		Directory:            directory,
		BootstrapAdminEmails: cfg.Auth.BootstrapAdminEmails,
		Logger:               logger,
	})

	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		m, err := smtpmailer.New(smtpmailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return ServiceContainer{}, fmt.Errorf("build smtp mailer: %w", err)
		}
		mailer = m
	}

	return ServiceContainer{
		AdminAuth:  adminAuth,
		BearerAuth: bearerAuth,
		Notifier:   service.NewNotificationService(mailer, logger),
		Content:    service.NewContentService(contentStore),
	}, nil
}
