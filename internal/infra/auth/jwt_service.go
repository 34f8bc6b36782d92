package auth

import (
	"strings"
	"time"

	"freelancer/config"
	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/domain/service"
	"freelancer/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     []byte            // HMAC key shared by access and refresh tokens.
	method     jwt.SigningMethod // The only algorithm accepted on decode.
	accessTTL  time.Duration     // Time-to-live for access tokens.
	refreshTTL time.Duration     // Time-to-live for refresh tokens.
	clock      service.Clock
	parser     *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.Token == nil {
		return nil, errors.New("token configuration must be provided")
	}

	return NewJWTServiceWithConfig(*cfg.Token, clock)
}

// NewJWTServiceWithConfig builds the codec from an explicit token configuration.
func NewJWTServiceWithConfig(tokenCfg config.TokenConfig, clock service.Clock) (service.TokenService, error) {
	if len(tokenCfg.Secret) < config.MinSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", config.MinSecretLength)
	}
	if tokenCfg.AccessTTL <= 0 || tokenCfg.RefreshTTL <= 0 {
		return nil, errors.New("jwt TTLs must be positive")
	}

	alg := strings.ToUpper(tokenCfg.Algorithm)
	if alg == "" {
		alg = config.DefaultTokenAlgorithm
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", tokenCfg.Algorithm)
	}

	if clock == nil {
		clock = service.SystemClock
	}

	return &jwtService{
		secret:     []byte(tokenCfg.Secret),
		method:     method,
		accessTTL:  tokenCfg.AccessTTL,
		refreshTTL: tokenCfg.RefreshTTL,
		clock:      clock,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(clock),
		),
	}, nil
}

// IssueAccess signs an access token for the subject.
func (s *jwtService) IssueAccess(subject uuid.UUID, email string) (string, error) {
	return s.sign(subject, email, entity.TokenTypeAccess, s.accessTTL)
}

// IssueRefresh signs a refresh token for the subject. It carries no email.
func (s *jwtService) IssueRefresh(subject uuid.UUID) (string, error) {
	return s.sign(subject, "", entity.TokenTypeRefresh, s.refreshTTL)
}

// IssuePair signs an access and a refresh token for the subject.
func (s *jwtService) IssuePair(subject uuid.UUID, email string) (*entity.TokenPair, error) {
	accessToken, err := s.IssueAccess(subject, email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.IssueRefresh(subject)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    entity.TokenTypeBearer,
	}, nil
}

// Decode verifies the signature and expiry of a token and returns its claims.
func (s *jwtService) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	return claims, nil
}

// VerifyType checks the type claim against the expected token type.
func (s *jwtService) VerifyType(claims *service.Claims, expected entity.TokenType) error {
	if claims == nil || claims.Type != expected {
		return errors.WithStack(domainerrors.ErrWrongTokenType)
	}

	return nil
}

func (s *jwtService) sign(subject uuid.UUID, email string, tokenType entity.TokenType, ttl time.Duration) (string, error) {
	now := s.clock()
	claims := service.Claims{
		Email: email,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
