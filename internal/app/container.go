package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Bavikaran/Authentication-System-Backend/domain"
	"github.com/Bavikaran/Authentication-System-Backend/internal/config"
	"github.com/Bavikaran/Authentication-System-Backend/internal/infrastructure/auth"
	"github.com/Bavikaran/Authentication-System-Backend/internal/infrastructure/database"
	"github.com/Bavikaran/Authentication-System-Backend/internal/infrastructure/notifications"
	"github.com/Bavikaran/Authentication-System-Backend/internal/infrastructure/repositories"
	"github.com/Bavikaran/Authentication-System-Backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger zerolog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client

	AccountRepo domain.AccountRepository
	SecretRepo  domain.SecretRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Notifier    domain.NotificationService
	SecretSvc   domain.SecretService
	AuthSvc     domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	c.AccountRepo = repositories.NewAccountRepository(c.DB)
	c.SecretRepo = repositories.NewSecretRepository(c.RedisClient)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	c.Notifier = notifications.NewMailerService(notifications.MailerConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, logger)

	c.SecretSvc = services.NewSecretService(c.SecretRepo, services.SecretConfig{
		CodeLength:      cfg.CodeLength,
		VerificationTTL: cfg.VerificationTTL,
		ResetTTL:        cfg.ResetTTL,
	})

	c.AuthSvc = services.NewAuthService(
		c.AccountRepo,
		c.SecretSvc,
		c.PasswordSvc,
		c.TokenSvc,
		c.Notifier,
		cfg.ClientURL,
	)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
