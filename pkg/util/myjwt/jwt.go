package myjwt

import (
	"errors"
	"time"

	"NoteLink/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// 连接认证失败原因，兼容旧客户端的取值
const (
	ReasonMissingToken   = "MISSING_TOKEN"
	ReasonTokenExpired   = "TOKEN_EXPIRED"
	ReasonMalformedToken = "MALFORMED_TOKEN"
)

var (
	ErrMissingToken   = errors.New(ReasonMissingToken)
	ErrTokenExpired   = errors.New(ReasonTokenExpired)
	ErrMalformedToken = errors.New(ReasonMalformedToken)
)

type CustomClaims struct {
	Uuid     string `json:"uuid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(uuid string, username string, role string) (string, error) {
	conf := config.GetConfig()
	key := conf.JwtConfig.Key
	if key == "" {
		return "", errors.New("jwt key is empty")
	}

	expireHours := conf.JwtConfig.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}

	issuer := conf.JwtConfig.Issuer
	if issuer == "" {
		issuer = conf.MainConfig.AppName
	}

	claims := CustomClaims{
		Uuid:     uuid,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

// ParseToken 校验凭证并返回身份信息
// 失败时返回 ErrTokenExpired 或 ErrMalformedToken，认证只发生在建立连接/请求时
func ParseToken(tokenString string) (*CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	conf := config.GetConfig()
	key := conf.JwtConfig.Key
	if key == "" {
		return nil, errors.New("jwt key is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrMalformedToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Reason 把解析错误映射为握手拒绝原因
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return ReasonMissingToken
	case errors.Is(err, ErrTokenExpired):
		return ReasonTokenExpired
	default:
		return ReasonMalformedToken
	}
}
