package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string
	SiteID   string

	DBDriver string
	DBDSN    string

	AuthHMACSecret string

	AdminUser     string
	AdminPassHash string // bcrypt
	HRUser        string
	HRPassHash    string // bcrypt

	EnableApplicantAuth bool

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	LogLevel string
	LogFile  string

	CacheSize      int
	RescoreWorkers int
	EnableMetrics  bool
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:                mode,
		HTTPAddr:            envOr("HTTP_ADDR", ":8080"),
		SiteID:              envOr("SITE_ID", "local"),
		DBDriver:            envOr("DB_DRIVER", "sqlite"),
		DBDSN:               envOr("DB_DSN", ""),
		AuthHMACSecret:      envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		AdminUser:           envOr("ADMIN_USER", "admin"),
		AdminPassHash:       envOr("ADMIN_PASS_HASH", "$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"),
		HRUser:              envOr("HR_USER", "hr"),
		HRPassHash:          os.Getenv("HR_PASS_HASH"),
		EnableApplicantAuth: envBool("ENABLE_APPLICANT_AUTH", true),
		CORSOriginsOnline:   csvOr("CORS_ORIGINS_ONLINE", "https://psychotest.mindengage.ai"),
		CORSOriginsOffline:  csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:3010"),
		LogLevel:            envOr("LOG_LEVEL", "info"),
		LogFile:             os.Getenv("LOG_FILE"),
		CacheSize:           envInt("CACHE_SIZE", 512),
		RescoreWorkers:      envInt("RESCORE_WORKERS", 4),
		EnableMetrics:       envBool("ENABLE_METRICS", true),
	}
}

// CORSOrigins returns the allow-list for the configured mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envInt(k string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
