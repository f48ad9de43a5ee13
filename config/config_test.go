package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "crm", cfg.DatabaseName)
	require.Equal(t, 10*time.Minute, cfg.SectionCacheTTL)
	require.Equal(t, 5*time.Minute, cfg.SectionCacheWarmInterval)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SECTION_CACHE_TTL", "30s")
	t.Setenv("ADMIN_ROLE_ID", "a29a3ba5-4b0d-de11-9a51-005056c00008")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, 30*time.Second, cfg.SectionCacheTTL)
	require.Equal(t, "a29a3ba5-4b0d-de11-9a51-005056c00008", cfg.AdminRoleID)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadProductionRequiresJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(viper.New())
	require.True(t, errors.Is(err, ErrMissingJWTSecret))

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoadDevelopmentAllowsEmptyJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(viper.New())
	require.NoError(t, err)
}

func TestProxies(t *testing.T) {
	require.Nil(t, Config{}.Proxies())
	cfg := Config{TrustedProxies: "10.0.0.0/8, 192.168.1.4"}
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.4"}, cfg.Proxies())
}
