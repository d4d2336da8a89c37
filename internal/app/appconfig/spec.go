package appconfig

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pitchsight/trackviz/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode to indicate development mode. When true, the program logs at trace level
	// and keeps bun query debugging noisier.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout
	// for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// infrastructure components connection instructions

	// PostgresDSN is the data source name for the PostgreSQL database. When set it takes
	// precedence over the discrete Postgres* fields below. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a
	// PostgreSQL DSN.
	PostgresDSN string `split_words:"true"`

	PostgresHost     string `split_words:"true" default:"localhost"`
	PostgresPort     int    `split_words:"true" default:"5432"`
	PostgresDB       string `split_words:"true" default:"international_week"`
	PostgresUser     string `split_words:"true"`
	PostgresPassword string `split_words:"true"`
	PostgresSSLMode  string `split_words:"true" default:"require"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}

// DSN returns the PostgreSQL data source name, either verbatim from PostgresDSN or
// assembled from the discrete connection fields.
func (c *Config) DSN() string {
	if c.PostgresDSN != "" {
		return c.PostgresDSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     fmt.Sprintf("%s:%d", c.PostgresHost, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": []string{c.PostgresSSLMode}}.Encode(),
	}
	return u.String()
}
