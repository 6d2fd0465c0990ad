package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCurrentEmployeeRouter(jwtService jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(Verifier(jwtService.JWTAuth()))
	r.Use(CurrentEmployee(jwtService, "emp1"))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(EmployeeIDFromContext(r.Context())))
	})
	return r
}

func TestCurrentEmployee_DefaultsWithoutToken(t *testing.T) {
	router := newCurrentEmployeeRouter(jwt.NewJWTService("secret", "1h"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp1", w.Body.String())
}

func TestCurrentEmployee_FromBearerToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "1h")
	router := newCurrentEmployeeRouter(jwtService)
	token, _, err := jwtService.GenerateSessionToken("emp3")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp3", w.Body.String())
}

func TestCurrentEmployee_FromQueryToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "1h")
	router := newCurrentEmployeeRouter(jwtService)
	token, _, err := jwtService.GenerateSessionToken("emp2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?jwt="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp2", w.Body.String())
}

func TestCurrentEmployee_RejectsInvalidToken(t *testing.T) {
	router := newCurrentEmployeeRouter(jwt.NewJWTService("secret", "1h"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentEmployee_RejectsRevokedToken(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "1h")
	router := newCurrentEmployeeRouter(jwtService)
	token, _, err := jwtService.GenerateSessionToken("emp2")
	require.NoError(t, err)
	jwtService.RevokeToken(token)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
