package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingCredentials = errors.New("missing Google Ads credentials")
	ErrConfigurationFile  = errors.New("invalid Google Ads configuration file")
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	Retry        Retry        `mapstructure:",squash"`
	Provisioning Provisioning `mapstructure:",squash"`
	Run          Run          `mapstructure:",squash"`
	Monitor      Monitor      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Enabled reports whether run history should be persisted.
func (d Database) Enabled() bool {
	return d.URL != ""
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type GoogleAds struct {
	DeveloperToken    string        `mapstructure:"google_ads_developer_token"`
	ClientID          string        `mapstructure:"google_ads_client_id"`
	ClientSecret      string        `mapstructure:"google_ads_client_secret"`
	RefreshToken      string        `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID   string        `mapstructure:"google_ads_login_customer_id"`
	ConfigurationFile string        `mapstructure:"google_ads_configuration_file"`
	APIURL            string        `mapstructure:"google_ads_api_url"`
	APIVersion        string        `mapstructure:"google_ads_api_version"`
	TokenURL          string        `mapstructure:"google_ads_token_url"`
	Timeout           time.Duration `mapstructure:"google_ads_timeout"`
}

type Retry struct {
	MaxAttempts   int           `mapstructure:"retry_max_attempts"`
	BaseDelay     time.Duration `mapstructure:"retry_base_delay"`
	BackoffFactor float64       `mapstructure:"retry_backoff_factor"`
	Jitter        float64       `mapstructure:"retry_jitter"`
}

type Provisioning struct {
	PropagationDelay   time.Duration `mapstructure:"provisioning_propagation_delay"`
	ActivationDelay    time.Duration `mapstructure:"provisioning_activation_delay"`
	CreationSpacing    time.Duration `mapstructure:"provisioning_creation_spacing"`
	FallbackTargetROAS float64       `mapstructure:"provisioning_fallback_target_roas"`
	FinalURL           string        `mapstructure:"provisioning_final_url"`
}

// Run holds the per-run campaign settings shared by the CLI, the admin endpoints and the scheduler.
type Run struct {
	CustomerID      string   `mapstructure:"pmax_customer_id"`
	LabelIndex      int      `mapstructure:"pmax_label_index"`
	Prefix          string   `mapstructure:"pmax_prefix"`
	DailyBudget     float64  `mapstructure:"pmax_daily_budget"`
	TargetROAS      float64  `mapstructure:"pmax_target_roas"`
	MerchantID      int64    `mapstructure:"pmax_merchant_id"`
	FeedLabel       string   `mapstructure:"pmax_feed_label"`
	CampaignType    string   `mapstructure:"pmax_campaign_type"`
	TargetCountries []string `mapstructure:"pmax_target_countries"`
	TargetLanguages []string `mapstructure:"pmax_target_languages"`
	StartEnabled    bool     `mapstructure:"pmax_start_enabled"`
	EUPolitical     bool     `mapstructure:"pmax_eu_political"`
	Apply           bool     `mapstructure:"pmax_apply"`
	MinImpressions  int64    `mapstructure:"pmax_min_impressions"`
	MinConversions  int64    `mapstructure:"pmax_min_conversions"`
	DaysBack        int      `mapstructure:"pmax_days_back"`
	AutoPauseEmpty  bool     `mapstructure:"pmax_auto_pause_empty"`
	LabelsFile      string   `mapstructure:"pmax_labels_file"`
}

type Monitor struct {
	CronSchedule string        `mapstructure:"monitor_cron"`
	Enabled      bool          `mapstructure:"monitor_enabled"`
	RequestDelay time.Duration `mapstructure:"monitor_request_delay"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5000"})

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CONFIGURATION_FILE", "")
	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v21")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "")
	viper.SetDefault("GOOGLE_ADS_TIMEOUT", "60s")

	viper.SetDefault("RETRY_MAX_ATTEMPTS", 6)
	viper.SetDefault("RETRY_BASE_DELAY", "1s")
	viper.SetDefault("RETRY_BACKOFF_FACTOR", 1.6)
	viper.SetDefault("RETRY_JITTER", 0.25)

	viper.SetDefault("PROVISIONING_PROPAGATION_DELAY", "1s")
	viper.SetDefault("PROVISIONING_ACTIVATION_DELAY", "1s")
	viper.SetDefault("PROVISIONING_CREATION_SPACING", "2s")
	viper.SetDefault("PROVISIONING_FALLBACK_TARGET_ROAS", 0.0)
	viper.SetDefault("PROVISIONING_FINAL_URL", "https://example.com")

	viper.SetDefault("PMAX_CUSTOMER_ID", "")
	viper.SetDefault("PMAX_LABEL_INDEX", 0)
	viper.SetDefault("PMAX_PREFIX", "PMax Feed")
	viper.SetDefault("PMAX_DAILY_BUDGET", 5.0)
	viper.SetDefault("PMAX_TARGET_ROAS", 0)
	viper.SetDefault("PMAX_MERCHANT_ID", 0)
	viper.SetDefault("PMAX_FEED_LABEL", "")
	viper.SetDefault("PMAX_CAMPAIGN_TYPE", "feed-only")
	viper.SetDefault("PMAX_TARGET_COUNTRIES", []string{"NL"})
	viper.SetDefault("PMAX_TARGET_LANGUAGES", []string{"nl"})
	viper.SetDefault("PMAX_START_ENABLED", false)
	viper.SetDefault("PMAX_EU_POLITICAL", false)
	viper.SetDefault("PMAX_APPLY", false)
	viper.SetDefault("PMAX_MIN_IMPRESSIONS", 100)
	viper.SetDefault("PMAX_MIN_CONVERSIONS", 0)
	viper.SetDefault("PMAX_DAYS_BACK", 7)
	viper.SetDefault("PMAX_AUTO_PAUSE_EMPTY", false)
	viper.SetDefault("PMAX_LABELS_FILE", "")

	viper.SetDefault("MONITOR_CRON", "0 6 * * 1") // Mondays at 06:00
	viper.SetDefault("MONITOR_ENABLED", false)
	viper.SetDefault("MONITOR_REQUEST_DELAY", "1s")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Using environment loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.GoogleAds.ConfigurationFile != "" {
		if err := config.GoogleAds.mergeFile(config.GoogleAds.ConfigurationFile); err != nil {
			return nil, err
		}
	}

	config.GoogleAds.LoginCustomerID = DigitsOnly(config.GoogleAds.LoginCustomerID)
	config.Run.CustomerID = DigitsOnly(config.Run.CustomerID)
	config.Run.TargetCountries = splitList(config.Run.TargetCountries)
	config.Run.TargetLanguages = splitList(config.Run.TargetLanguages)
	config.Server.AllowedOrigins = splitList(config.Server.AllowedOrigins)

	if config.Database.Enabled() {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// ValidateCredentials fails when any credential required to call the API is missing.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.GoogleAds.DeveloperToken == "" {
		missing = append(missing, "GOOGLE_ADS_DEVELOPER_TOKEN")
	}
	if c.GoogleAds.ClientID == "" {
		missing = append(missing, "GOOGLE_ADS_CLIENT_ID")
	}
	if c.GoogleAds.ClientSecret == "" {
		missing = append(missing, "GOOGLE_ADS_CLIENT_SECRET")
	}
	if c.GoogleAds.RefreshToken == "" {
		missing = append(missing, "GOOGLE_ADS_REFRESH_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// DigitsOnly strips everything but digits, so "123-456-7890" becomes "1234567890".
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitList trims entries and expands values that still carry commas.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug(".env loaded from ", location)
			return
		}
	}

	logrus.Debug("No .env file found, relying on the process environment")
}
