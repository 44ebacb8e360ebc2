package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "quizarena-api"

var ErrTokenInvalido = errors.New("token inválido")

// JWTService implementa a interface TokenService com HS256.
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTService cria uma nova instância de JWTService com o tempo de vida informado.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateToken gera um token JWT para o usuário. Retorna o token e a validade em segundos.
func (s *JWTService) GenerateToken(userID string) (string, int64, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", 0, err
	}

	return signedToken, int64(s.ttl / time.Second), nil
}

// ValidateToken valida o token JWT e retorna o ID do usuário.
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", ErrTokenInvalido
	}
	if claims.Subject == "" {
		return "", errors.New("token sem ID de usuário (sub)")
	}
	return claims.Subject, nil
}
