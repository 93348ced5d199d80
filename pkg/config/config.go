package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "PARKSAPI"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "PARKSAPI_APP_ENV"
	EnvDBDSN  = "PARKSAPI_DB_DSN"
	EnvDBHost = "PARKSAPI_DB_HOST"
	EnvDBUser = "PARKSAPI_DB_USER"
	EnvDBName = "PARKSAPI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Seed          SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PARKSAPI_APP_ENV" required:"true"`
	Port         string `envconfig:"PARKSAPI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PARKSAPI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PARKSAPI_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"PARKSAPI_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PARKSAPI_DB_DSN"`
	Driver string `envconfig:"PARKSAPI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PARKSAPI_DB_HOST"`
	LegacyPort     int    `envconfig:"PARKSAPI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PARKSAPI_DB_USER"`
	LegacyPassword string `envconfig:"PARKSAPI_DB_PASSWORD"`
	LegacyName     string `envconfig:"PARKSAPI_DB_NAME"`
	LegacySSLMode  string `envconfig:"PARKSAPI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PARKSAPI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PARKSAPI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PARKSAPI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PARKSAPI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PARKSAPI_REDIS_URL" required:"true"`
	Password     string        `envconfig:"PARKSAPI_REDIS_PASSWORD"`
	DB           int           `envconfig:"PARKSAPI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PARKSAPI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PARKSAPI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PARKSAPI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PARKSAPI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PARKSAPI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PARKSAPI_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"PARKSAPI_JWT_ISSUER" required:"true"`
	Audience          string `envconfig:"PARKSAPI_JWT_AUDIENCE" required:"true"`
	ExpirationMinutes int    `envconfig:"PARKSAPI_JWT_EXPIRATION_MINUTES" default:"60"`
}

func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PARKSAPI_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PARKSAPI_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PARKSAPI_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PARKSAPI_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PARKSAPI_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginHandleLimit   int           `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_LOGIN_HANDLE_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"PARKSAPI_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PARKSAPI_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PARKSAPI_AUTO_MIGRATE" default:"false"`
}

// SeedConfig optionally describes a bootstrap account created alongside the
// reference dataset. Seeding skips the account when any field is empty.
type SeedConfig struct {
	AdminUserName string `envconfig:"PARKSAPI_SEED_ADMIN_USERNAME"`
	AdminEmail    string `envconfig:"PARKSAPI_SEED_ADMIN_EMAIL"`
	AdminPassword string `envconfig:"PARKSAPI_SEED_ADMIN_PASSWORD"`
	AdminName     string `envconfig:"PARKSAPI_SEED_ADMIN_NAME"`
}

// Enabled reports whether every bootstrap account field is set.
func (s SeedConfig) Enabled() bool {
	return s.AdminUserName != "" && s.AdminEmail != "" && s.AdminPassword != "" && s.AdminName != ""
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
