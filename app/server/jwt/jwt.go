package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

var (
	ErrMalformed        = errors.New("token malformed")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

type JWT struct {
	key []byte
	ttl time.Duration
	now func() time.Time // 签发和校验共用的时钟
}

type Claims struct {
	Subject  string    // 管理员用户名
	IssuedAt time.Time // 签发时间
	Expires  time.Time // 过期时间，精确到秒
}

type Option func(*JWT)

// WithClock 替换默认的 time.Now
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

func New(key string, ttl time.Duration, opts ...Option) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid ttl: %s", ttl)
	}

	j := &JWT{
		key: []byte(key),
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

func (j *JWT) TTL() time.Duration {
	return j.ttl
}

func (j *JWT) SignToken(subject string) (string, *Claims, error) {
	if subject == "" {
		return "", nil, errors.New("subject is empty")
	}

	// 创建声明
	now := j.now()
	registered := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	// 签名
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, registered).SignedString(j.key)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return tokenString, &Claims{
		Subject:  subject,
		IssuedAt: registered.IssuedAt.Time,
		Expires:  registered.ExpiresAt.Time,
	}, nil
}

func (j *JWT) ParseToken(tokenString string) (*Claims, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrMalformed)
	}

	var registered jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &registered, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		// 签名先于声明校验，所以签名错误的过期 token 归为签名错误
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %w", ErrExpired, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	// 匹配内容
	if registered.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrMalformed)
	}

	claims := &Claims{
		Subject: registered.Subject,
		Expires: registered.ExpiresAt.Time,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}

	return claims, nil
}
