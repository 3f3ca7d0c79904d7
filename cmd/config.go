package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"rfidship/internal/pkg/errs"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	JWTAccessSecret  string        `yaml:"jwt_access_secret"`
	JWTRefreshSecret string        `yaml:"jwt_refresh_secret"`
	JWTIssuer        string        `yaml:"jwt_issuer"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"`
	BcryptCost       int           `yaml:"bcrypt_cost"`

	RfidDerivation string `yaml:"rfid_derivation"`

	LoginRatePerSec float64 `yaml:"login_rate_per_sec"`
	LoginBurst      int     `yaml:"login_burst"`

	AuditDigestSchedule string `yaml:"audit_digest_schedule"`

	AdminAccount  string `yaml:"admin_account"`
	AdminPassword string `yaml:"admin_password"`
	AdminCode     string `yaml:"admin_code"`
	AdminName     string `yaml:"admin_name"`
}

// LoadConfig reads .env into the environment, then the YAML file at path
// (skipped when path is empty), then lets environment variables override
// the file. Unset values fall back to defaults.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.HTTPPort, "HTTP_PORT")
	setString(&c.DBHost, "DB_HOST")
	setString(&c.DBPort, "DB_PORT")
	setString(&c.DBUser, "DB_USER")
	setString(&c.DBPassword, "DB_PASSWORD")
	setString(&c.DBName, "DB_NAME")
	setString(&c.DBSslMode, "DB_SSLMODE")
	setString(&c.JWTAccessSecret, "JWT_ACCESS_SECRET")
	setString(&c.JWTRefreshSecret, "JWT_REFRESH_SECRET")
	setString(&c.JWTIssuer, "JWT_ISSUER")
	setString(&c.RfidDerivation, "RFID_DERIVATION")
	setString(&c.AuditDigestSchedule, "AUDIT_DIGEST_SCHEDULE")
	setString(&c.AdminAccount, "ADMIN_ACCOUNT")
	setString(&c.AdminPassword, "ADMIN_PASSWORD")
	setString(&c.AdminCode, "ADMIN_CODE")
	setString(&c.AdminName, "ADMIN_NAME")

	return errors.Join(
		setParsed(&c.AccessTokenTTL, "ACCESS_TOKEN_TTL", time.ParseDuration),
		setParsed(&c.RefreshTokenTTL, "REFRESH_TOKEN_TTL", time.ParseDuration),
		setParsed(&c.BcryptCost, "BCRYPT_COST", strconv.Atoi),
		setParsed(&c.LoginRatePerSec, "LOGIN_RATE_PER_SEC", func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		}),
		setParsed(&c.LoginBurst, "LOGIN_BURST", strconv.Atoi),
	)
}

func (c *Config) applyDefaults() {
	withDefault(&c.HTTPPort, "8080")
	withDefault(&c.DBHost, "localhost")
	withDefault(&c.DBPort, "5432")
	withDefault(&c.DBSslMode, "disable")
	withDefault(&c.JWTIssuer, "rfid-system")
	withDefault(&c.AccessTokenTTL, time.Hour)
	withDefault(&c.RefreshTokenTTL, 7*24*time.Hour)
	withDefault(&c.RfidDerivation, "concat")
	withDefault(&c.LoginRatePerSec, 1)
	withDefault(&c.LoginBurst, 5)
	withDefault(&c.AuditDigestSchedule, "0 0 * * * *")
	withDefault(&c.AdminCode, "ADM")
	withDefault(&c.AdminName, "Administrator")
}

// Validate reports every missing mandatory setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.DBUser == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.JWTAccessSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_ACCESS_SECRET"))
	}
	if c.JWTRefreshSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_REFRESH_SECRET"))
	}
	if c.AdminAccount != "" && c.AdminPassword == "" {
		problems = append(problems, errs.NewValueIsRequiredError("ADMIN_PASSWORD"))
	}
	return errors.Join(problems...)
}

// DSN is the libpq connection string shared by goose and GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) HTTPAddress() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setParsed[T any](dst *T, key string, parse func(string) (T, error)) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	parsed, err := parse(v)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	*dst = parsed
	return nil
}

func withDefault[T comparable](dst *T, fallback T) {
	var zero T
	if *dst == zero {
		*dst = fallback
	}
}
