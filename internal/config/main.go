//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env               string
	Port              int
	WebURL            string
	SentryDsn         string
	SampleRate        float64
	Release           string
	SessionSecret     string
	SessionExpiry     string
	TenantCredentials string
	CatalogPath       string
	MatchPolicy       string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.SessionSecret = parser.EnvStr("SESSION_SECRET", "dev-secret")
	cfg.SessionExpiry = parser.EnvStr("SESSION_EXPIRY", "30d")

	// Demo accounts, password equal to the username.
	cfg.TenantCredentials = parser.EnvStr(
		"TENANT_CREDENTIALS",
		"brand1:brand1,brand2:brand2,brand3:brand3,brand4:brand4,"+
			"brand5:brand5,brand6:brand6,brand7:brand7,brand8:brand8,"+
			"brand9:brand9,brand10:brand10",
	)

	// Path to an .xlsx workbook with the deadline calendar. When empty the
	// embedded reference table is used instead.
	cfg.CatalogPath = parser.EnvStr("CATALOG_PATH", "")
	cfg.MatchPolicy = parser.EnvStr("MATCH_POLICY", "normalized")

	return cfg
}
