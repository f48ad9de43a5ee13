package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crmsections/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestJSONError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONError(c, http.StatusNotFound, "Section not found", "id 42")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"Section not found","details":"id 42"}`, w.Body.String())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-7", []string{"r1", "r2"}, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-7", claims.Subject)
	require.Equal(t, []string{"r1", "r2"}, claims.Roles)
}

func TestValidateTokenRejects(t *testing.T) {
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, ActorClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})
	key, err := secretKey()
	require.NoError(t, err)
	signed, err := noSubject.SignedString(key)
	require.NoError(t, err)
	_, err = ValidateToken(signed)
	require.Error(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, ActorClaims{
		StandardClaims: jwt.StandardClaims{Subject: "u", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})
	signed, err = foreign.SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = ValidateToken(signed)
	require.Error(t, err)
}

func TestTokensRefusedInProductionWithoutSecret(t *testing.T) {
	saved := config.AppConfig
	t.Cleanup(func() { config.AppConfig = saved })
	config.AppConfig = config.Config{Env: "production"}

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, ActorClaims{
		Roles:          []string{"admin"},
		StandardClaims: jwt.StandardClaims{Subject: "attacker", ExpiresAt: time.Now().Add(time.Hour).Unix()},
	})
	signed, err := forged.SignedString([]byte(devSecret))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	require.Error(t, err)

	_, err = GenerateToken("user-1", nil, time.Hour)
	require.ErrorIs(t, err, config.ErrMissingJWTSecret)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true, "")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(false, "warn")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger(false, "chatty")
	require.Error(t, err)
}
