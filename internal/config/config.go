package config

import (
	"os"
	"strings"
	"time"

	"github.com/SeakMengs/ClubCert/internal/env"
)

type Config struct {
	Port    string
	ENV     string
	LogFile string
	Minio   MinioConfig
	Badge   BadgeConfig
	Fetch   FetchConfig
	Cors    CorsConfig
	// Directory served under /static, the favicon lives here too
	StaticDir string
}

type MinioConfig struct {
	ENDPOINT    string
	ACCESS_KEY  string
	SECRET_KEY  string
	USE_SSL     bool
	REGION      string
	BUCKET_NAME string
	// When false, uploading to a key that already exists fails instead of replacing the object
	UPLOAD_OVERWRITE bool
	PRESIGN_EXPIRY   time.Duration
}

type BadgeConfig struct {
	TemplatePath string
	FontPath     string
	// Optional yaml file overriding the default element rectangles
	LayoutPath string
	TmpDir     string
}

type FetchConfig struct {
	// 0 means no timeout beyond the http client defaults
	Timeout time.Duration
}

type CorsConfig struct {
	AllowOrigins []string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port:      env.GetString("PORT", "8080"),
		ENV:       env.GetString("ENV", "development"),
		LogFile:   env.GetString("LOG_FILE", ""),
		StaticDir: env.GetString("STATIC_DIR", "static"),
		Minio: MinioConfig{
			ENDPOINT:         env.GetString("MINIO_ENDPOINT", ""),
			ACCESS_KEY:       env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY:       env.GetString("MINIO_SECRET_KEY", ""),
			USE_SSL:          env.GetBool("MINIO_USE_SSL", false),
			REGION:           env.GetString("MINIO_REGION", "us-east-1"),
			BUCKET_NAME:      env.GetString("BUCKET_NAME", ""),
			UPLOAD_OVERWRITE: env.GetBool("UPLOAD_OVERWRITE", false),
			PRESIGN_EXPIRY:   env.GetDuration("PRESIGN_EXPIRY", time.Hour),
		},
		Badge: BadgeConfig{
			TemplatePath: env.GetString("TEMPLATE_PATH", "template.pdf"),
			FontPath:     env.GetString("FONT_PATH", "Montserrat-SemiBold.ttf"),
			LayoutPath:   env.GetString("LAYOUT_PATH", ""),
			TmpDir:       env.GetString("TMP_DIR", os.TempDir()),
		},
		Fetch: FetchConfig{
			Timeout: env.GetDuration("FETCH_TIMEOUT", 0),
		},
		Cors: CorsConfig{
			AllowOrigins: splitAndTrim(env.GetString("CORS_ALLOW_ORIGINS", "*")),
		},
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
