package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	LeadStorePostgres  = "postgres"
	LeadStorePostgrest = "postgrest"

	NotifySMTP     = "smtp"
	NotifyFunction = "function"
	NotifyNone     = "none"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	DatabaseURL string
	LeadStore   string

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	SupabaseJWTSecret  string
	StorageBucket      string

	RabbitMQURL string

	NotifyDriver   string
	NotifyTo       string
	NotifyFunction string
	MailHost       string
	MailPort       int
	MailUser       string
	MailPass       string
	MailFrom       string

	WhatsAppNumber string
	RedirectDelay  time.Duration

	KommoURL      string
	KommoToken    string
	KommoStatusID int

	IntakeRateLimit int
	LeadsCacheTTL   time.Duration
	StatsInterval   time.Duration
	HookTimeout     time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		LeadStore:   getEnv("LEAD_STORE", LeadStorePostgres),

		SupabaseURL:        strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseJWTSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
		StorageBucket:      getEnv("STORAGE_BUCKET", "portfolio"),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		NotifyDriver:   getEnv("NOTIFY_DRIVER", NotifySMTP),
		NotifyTo:       os.Getenv("NOTIFY_TO"),
		NotifyFunction: getEnv("NOTIFY_FUNCTION", "send-lead-notification"),
		MailHost:       os.Getenv("MAIL_HOST"),
		MailUser:       os.Getenv("MAIL_USER"),
		MailPass:       os.Getenv("MAIL_PASS"),
		MailFrom:       getEnv("MAIL_FROM", "Leads <nao-responda@produtora.com.br>"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "5547999999999"),

		KommoURL:   os.Getenv("KOMMO_URL"),
		KommoToken: os.Getenv("KOMMO_API_TOKEN"),
	}

	var err error
	if cfg.MailPort, err = getInt("MAIL_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.KommoStatusID, err = getInt("KOMMO_STATUS_ID", 0); err != nil {
		return nil, err
	}
	if cfg.IntakeRateLimit, err = getInt("INTAKE_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.RedirectDelay, err = getDuration("REDIRECT_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.LeadsCacheTTL, err = getDuration("LEADS_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.StatsInterval, err = getDuration("STATS_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.HookTimeout, err = getDuration("HOOK_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	// Conteúdo do site e papéis de usuário ficam sempre no Postgres;
	// LEAD_STORE escolhe só onde os leads moram.
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL é obrigatório")
	}

	switch c.LeadStore {
	case LeadStorePostgres:
	case LeadStorePostgrest:
		if c.SupabaseURL == "" || c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_URL e SUPABASE_SERVICE_KEY são obrigatórios para LEAD_STORE=%s", c.LeadStore)
		}
	default:
		return fmt.Errorf("LEAD_STORE desconhecido: %q", c.LeadStore)
	}

	switch c.NotifyDriver {
	case NotifySMTP:
		if c.MailHost == "" || c.NotifyTo == "" {
			return fmt.Errorf("MAIL_HOST e NOTIFY_TO são obrigatórios para NOTIFY_DRIVER=%s", c.NotifyDriver)
		}
	case NotifyFunction:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL é obrigatório para NOTIFY_DRIVER=%s", c.NotifyDriver)
		}
	case NotifyNone:
	default:
		return fmt.Errorf("NOTIFY_DRIVER desconhecido: %q", c.NotifyDriver)
	}

	if c.KommoToken != "" && c.KommoURL == "" {
		return fmt.Errorf("KOMMO_URL é obrigatório quando KOMMO_API_TOKEN está definido")
	}

	if c.IntakeRateLimit <= 0 {
		return fmt.Errorf("INTAKE_RATE_LIMIT deve ser positivo")
	}
	return nil
}

// CRMEnabled: o espelhamento no Kommo é opcional.
func (c *Config) CRMEnabled() bool {
	return c.KommoToken != ""
}

// FunctionsURL is the edge-functions endpoint of the Supabase project.
func (c *Config) FunctionsURL() string {
	return c.SupabaseURL + "/functions/v1"
}

func (c *Config) StorageURL() string {
	return c.SupabaseURL + "/storage/v1"
}

func (c *Config) AuthURL() string {
	return c.SupabaseURL + "/auth/v1"
}

func (c *Config) RestURL() string {
	return c.SupabaseURL + "/rest/v1"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s inválido: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
