package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimEmployeeID = "employee_id"
	ClaimType       = "type"

	tokenTypeSession = "session"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// Service issues and checks the tokens that name the current employee.
// A token carries identity only; it grants nothing.
type Service interface {
	GenerateSessionToken(employeeID string) (token string, expiresAt int64, err error)
	EmployeeIDFromClaims(claims map[string]interface{}) (employeeID string, ok bool)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	sessionExpirationTime string
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string) Service {
	return &JWTService{
		sessionExpirationTime: sessionExpirationTime,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) GenerateSessionToken(employeeID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		ClaimEmployeeID: employeeID,
		ClaimType:       tokenTypeSession,
		"iat":           time.Now().Unix(),
		"exp":           expiresAt,
	})
	return tokenString, expiresAt, err
}

// EmployeeIDFromClaims returns the employee id of a session token's claims.
func (j *JWTService) EmployeeIDFromClaims(claims map[string]interface{}) (string, bool) {
	if claims[ClaimType] != tokenTypeSession {
		return "", false
	}
	employeeID, ok := claims[ClaimEmployeeID].(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
