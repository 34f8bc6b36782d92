package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenAlgorithm = "HS256"
	DefaultAccessTTL      = 30 * time.Minute
	DefaultRefreshTTL     = 7 * 24 * time.Hour
	DefaultBcryptCost     = 12

	// MinSecretLength is the shortest accepted HMAC signing secret.
	MinSecretLength = 32
)

var supportedTokenAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// ApplyDefaults fills every unset section with the service defaults.
func (c *Config) ApplyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "Freelancer Feedback Assistant"
	}
	if c.Env.Version == "" {
		c.Env.Version = "1.0.0"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8000
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}

	if c.Token == nil {
		c.Token = &TokenConfig{}
	}
	if c.Token.Algorithm == "" {
		c.Token.Algorithm = DefaultTokenAlgorithm
	}
	c.Token.Algorithm = strings.ToUpper(c.Token.Algorithm)
	if c.Token.AccessTTL == 0 {
		c.Token.AccessTTL = DefaultAccessTTL
	}
	if c.Token.RefreshTTL == 0 {
		c.Token.RefreshTTL = DefaultRefreshTTL
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = DefaultBcryptCost
	}

	if c.PasswordStrength == nil {
		c.PasswordStrength = &PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        100,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		}
	}

	if c.RateLimit == nil {
		c.RateLimit = &RateLimitConfig{Enabled: true}
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 60
	}
	if c.RateLimit.AuthRequestsPerMinute == 0 {
		c.RateLimit.AuthRequestsPerMinute = 5
	}
	if c.RateLimit.CleanupInterval == 0 {
		c.RateLimit.CleanupInterval = 5 * time.Minute
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{Enabled: true}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Feedback == nil {
		c.Feedback = &FeedbackConfig{}
	}
	if c.Feedback.MaxLength == 0 {
		c.Feedback.MaxLength = 5000
	}

	if c.Upload == nil {
		c.Upload = &UploadConfig{}
	}
	if c.Upload.MaxSizeMB == 0 {
		c.Upload.MaxSizeMB = 50
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".pdf", ".psd", ".ai", ".sketch", ".fig"}
	}

	if c.Pagination == nil {
		c.Pagination = &PaginationConfig{}
	}
	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = 100
	}
	if c.Pagination.MaxLimit == 0 {
		c.Pagination.MaxLimit = 100
	}
	if c.Pagination.NotificationLimit == 0 {
		c.Pagination.NotificationLimit = 50
	}
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if c.Token == nil || c.Auth == nil {
		return errors.New("token and auth sections are required")
	}
	if len(c.Token.Secret) < MinSecretLength {
		return errors.Errorf("token.secret must be at least %d characters", MinSecretLength)
	}
	if _, ok := supportedTokenAlgorithms[c.Token.Algorithm]; !ok {
		return errors.Errorf("unsupported token.algorithm %q", c.Token.Algorithm)
	}
	if c.Token.AccessTTL <= 0 || c.Token.RefreshTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return errors.Errorf("auth.bcryptCost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if rl := c.RateLimit; rl != nil && rl.Enabled {
		if rl.RequestsPerMinute <= 0 || rl.AuthRequestsPerMinute <= 0 {
			return errors.New("rateLimit requests per minute must be positive")
		}
		if rl.CleanupInterval <= 0 {
			return errors.New("rateLimit.cleanupInterval must be positive")
		}
	}

	return nil
}
