package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Log           LogConfig           `yaml:"log"`
	Site          SiteConfig          `yaml:"site"`
	Contact       ContactConfig       `yaml:"contact"`
	Email         EmailConfig         `yaml:"email"`
	RateLimit     RateLimitConfig     `yaml:"ratelimit"`
	Inbox         InboxConfig         `yaml:"inbox"`
	Observability ObservabilityConfig `yaml:"observability"`
	Carousel      CarouselConfig      `yaml:"carousel"`
	Content       ContentConfig       `yaml:"content"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	ListenAddr      string   `yaml:"listen_addr"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// SiteConfig holds public site settings
type SiteConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// ContactConfig selects the delivery channels of the contact form
type ContactConfig struct {
	FormspreeEndpoint string   `yaml:"formspree_endpoint"`
	UseFormspree      bool     `yaml:"use_formspree"`
	UseEmail          bool     `yaml:"use_email"`
	Timeout           Duration `yaml:"timeout"`
}

// EmailConfig holds the transactional email provider settings
type EmailConfig struct {
	APIKey       string `yaml:"api_key"`
	From         string `yaml:"from"`
	To           string `yaml:"to"`
	ExposeErrors bool   `yaml:"expose_errors"`
}

// RateLimitConfig bounds contact submissions per client IP
type RateLimitConfig struct {
	ContactPerMinute int `yaml:"contact_per_minute"`
}

// InboxConfig locates the submission log; an empty path disables it
type InboxConfig struct {
	Path string `yaml:"path"`
}

// ObservabilityConfig toggles metrics and tracing
type ObservabilityConfig struct {
	Metrics bool `yaml:"metrics"`
	Tracing bool `yaml:"tracing"`
}

// CarouselConfig holds testimonial carousel settings
type CarouselConfig struct {
	Interval Duration `yaml:"interval"`
}

// ContentConfig overrides the bundled catalogue
type ContentConfig struct {
	PortfolioPath string `yaml:"portfolio_path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Site: SiteConfig{
			Name:    "SitePrisme",
			BaseURL: "http://localhost:8080",
		},
		Contact: ContactConfig{
			FormspreeEndpoint: "https://formspree.io/f/mjkrqeba",
			UseFormspree:      true,
			UseEmail:          false,
			Timeout:           Duration(10 * time.Second),
		},
		Email: EmailConfig{
			From: "onboarding@resend.dev",
			To:   "nrb5867@gmail.com",
		},
		RateLimit: RateLimitConfig{
			ContactPerMinute: 5,
		},
		Observability: ObservabilityConfig{
			Metrics: true,
		},
		Carousel: CarouselConfig{
			Interval: Duration(5 * time.Second),
		},
	}
}

// Load builds the configuration with precedence ENV > .env > file > defaults.
// An empty path skips the file. envFile is loaded with godotenv when it
// exists; variables already present in the environment win.
func Load(path, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env file: %w", err)
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays SITEPRISME_* variables on cfg
func applyEnv(cfg *Config) {
	cfg.Server.ListenAddr = ParseString("SITEPRISME_LISTEN", cfg.Server.ListenAddr)
	cfg.Log.Level = ParseString("SITEPRISME_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = ParseString("SITEPRISME_LOG_FORMAT", cfg.Log.Format)
	cfg.Site.BaseURL = ParseString("SITEPRISME_BASE_URL", cfg.Site.BaseURL)

	cfg.Contact.FormspreeEndpoint = ParseString("SITEPRISME_FORMSPREE_ENDPOINT", cfg.Contact.FormspreeEndpoint)
	cfg.Contact.UseFormspree = ParseBool("SITEPRISME_USE_FORMSPREE", cfg.Contact.UseFormspree)
	cfg.Contact.UseEmail = ParseBool("SITEPRISME_USE_EMAIL", cfg.Contact.UseEmail)
	cfg.Contact.Timeout = Duration(ParseDuration("SITEPRISME_CONTACT_TIMEOUT", cfg.Contact.Timeout.Std()))

	cfg.Email.APIKey = ParseString("RESEND_API_KEY", cfg.Email.APIKey)
	cfg.Email.From = ParseString("SITEPRISME_EMAIL_FROM", cfg.Email.From)
	cfg.Email.To = ParseString("SITEPRISME_EMAIL_TO", cfg.Email.To)

	cfg.RateLimit.ContactPerMinute = ParseInt("SITEPRISME_CONTACT_PER_MINUTE", cfg.RateLimit.ContactPerMinute)
	cfg.Inbox.Path = ParseString("SITEPRISME_INBOX_PATH", cfg.Inbox.Path)
	cfg.Observability.Metrics = ParseBool("SITEPRISME_METRICS", cfg.Observability.Metrics)
	cfg.Observability.Tracing = ParseBool("SITEPRISME_TRACING", cfg.Observability.Tracing)
	cfg.Content.PortfolioPath = ParseString("SITEPRISME_PORTFOLIO_PATH", cfg.Content.PortfolioPath)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(c.Server.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("server.listen_addr %q: %w", c.Server.ListenAddr, err))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be json or console", c.Log.Format))
	}

	if !c.Contact.UseFormspree && !c.Contact.UseEmail {
		errs = append(errs, errors.New("contact: at least one of use_formspree or use_email must be enabled"))
	}
	if c.Contact.UseFormspree {
		u, err := url.Parse(c.Contact.FormspreeEndpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("contact.formspree_endpoint %q: must be an absolute http(s) URL", c.Contact.FormspreeEndpoint))
		}
	}
	if c.Contact.UseEmail {
		if c.Email.APIKey == "" {
			errs = append(errs, errors.New("email.api_key: required when contact.use_email is enabled (or set RESEND_API_KEY)"))
		}
		if c.Email.From == "" || c.Email.To == "" {
			errs = append(errs, errors.New("email: from and to are required when contact.use_email is enabled"))
		}
	}
	if c.Contact.Timeout <= 0 {
		errs = append(errs, errors.New("contact.timeout: must be positive"))
	}
	if c.RateLimit.ContactPerMinute < 0 {
		errs = append(errs, errors.New("ratelimit.contact_per_minute: must not be negative"))
	}
	if c.Carousel.Interval <= 0 {
		errs = append(errs, errors.New("carousel.interval: must be positive"))
	}

	return errors.Join(errs...)
}
