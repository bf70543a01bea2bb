package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultConfigPath = "src/internal/config/cfg.yml"

type Configuration struct {
	Logs     LogsSettings     `mapstructure:"logs"`
	App      Application      `mapstructure:"app"`
	Database Database         `mapstructure:"database"`
	Queue    QueueConfig      `mapstructure:"queue"`
	Redis    Redis            `mapstructure:"redis"`
	Security SecuritySettings `mapstructure:"security"`
	Server   ServerSettings   `mapstructure:"server"`
	Cache    CacheConfig      `mapstructure:"cache"`
	Identity IdentityProvider `mapstructure:"identity"`
	LLM      LLMSettings      `mapstructure:"llm"`
}

type LogsSettings struct {
	Level            string `mapstructure:"level"`
	Path             string `mapstructure:"log-path"`
	EnableJSONOutput bool   `mapstructure:"enable-json-output"`
}

type Application struct {
	Name    string `mapstructure:"name"`
	Timeout int    `mapstructure:"timeout"`
	Version string `mapstructure:"version"`
}

type Database struct {
	Url         string      `mapstructure:"url"`
	DbName      string      `mapstructure:"dbname"`
	Timeout     int         `mapstructure:"timeout"`
	Collections Collections `mapstructure:"collections"`
}

type Collections struct {
	Users             string `mapstructure:"users"`
	Sessions          string `mapstructure:"sessions"`
	EmotionAnalysis   string `mapstructure:"emotion-analysis"`
	TeamMembers       string `mapstructure:"team-members"`
	TeamPerformance   string `mapstructure:"team-performance"`
	Personas          string `mapstructure:"personas"`
	ComplianceReports string `mapstructure:"compliance-reports"`
	BusinessDNA       string `mapstructure:"business-dna"`
	CommunityInsights string `mapstructure:"community-insights"`
}

type QueueConfig struct {
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

type RabbitMQConfig struct {
	Url          string `mapstructure:"url"`
	Exchange     string `mapstructure:"exchange"`
	ExchangeType string `mapstructure:"exchange-type"`
	RoutingKey   string `mapstructure:"routing-key"`
	Durable      bool   `mapstructure:"durable"`
	AutoDelete   bool   `mapstructure:"auto-delete"`
	Internal     bool   `mapstructure:"internal"`
	NoWait       bool   `mapstructure:"no-wait"`
}

type Redis struct {
	Url      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	Db       int    `mapstructure:"db"`
}

type SecuritySettings struct {
	CorsOrigins        []string `mapstructure:"cors-origins"`
	SessionCookieName  string   `mapstructure:"session-cookie-name"`
	SessionTTLDays     int      `mapstructure:"session-ttl-days"`
	SecureCookie       bool     `mapstructure:"secure-cookie"`
	ExposeSessionError bool     `mapstructure:"expose-session-error"`
}

type ServerSettings struct {
	Port         string `mapstructure:"port"`
	Mode         string `mapstructure:"mode"`
	ReadTimeout  int    `mapstructure:"read-timeout"`
	WriteTimeout int    `mapstructure:"write-timeout"`
	IdleTimeout  int    `mapstructure:"idle-timeout"`
}

type CacheConfig struct {
	SessionExpirationMinutes   int    `mapstructure:"session-expiration-minutes"`
	DashboardStatKey           string `mapstructure:"dashboard-stat-key"`
	DashboardExpirationMinutes int    `mapstructure:"dashboard-expiration-minutes"`
}

type IdentityProvider struct {
	BaseURL string `mapstructure:"base-url"`
	Timeout int    `mapstructure:"timeout"`
}

type LLMSettings struct {
	Provider      string `mapstructure:"provider"`
	ApiKey        string `mapstructure:"api-key"`
	BaseURL       string `mapstructure:"base-url"`
	Model         string `mapstructure:"model"`
	Timeout       int    `mapstructure:"timeout"`
	FallbackChars int    `mapstructure:"fallback-chars"`
}

func Load() *Configuration {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		logrus.Panicf("Error loading configuration: %v", err)
	}
	logrus.Info("Configuration loaded")

	return cfg
}

// LoadFrom reads the yml file at path (if present) on top of the built-in
// defaults and then applies environment overrides.
func LoadFrom(path string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yml")

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("path", path).Warn("Config file not found, using defaults")
	} else {
		return nil, err
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logs.level", "info")
	v.SetDefault("app.name", "bizpulse-api")
	v.SetDefault("app.timeout", 30)
	v.SetDefault("app.version", "dev")
	v.SetDefault("database.url", "mongodb://localhost:27017")
	v.SetDefault("database.dbname", "bizpulse")
	v.SetDefault("database.timeout", 10)
	v.SetDefault("database.collections.users", "users")
	v.SetDefault("database.collections.sessions", "user_sessions")
	v.SetDefault("database.collections.emotion-analysis", "emotion_analysis")
	v.SetDefault("database.collections.team-members", "team_members")
	v.SetDefault("database.collections.team-performance", "team_performance")
	v.SetDefault("database.collections.personas", "personas")
	v.SetDefault("database.collections.compliance-reports", "compliance_reports")
	v.SetDefault("database.collections.business-dna", "business_dna")
	v.SetDefault("database.collections.community-insights", "community_insights")
	v.SetDefault("queue.rabbitmq.exchange", "bizpulse.activity")
	v.SetDefault("queue.rabbitmq.exchange-type", "topic")
	v.SetDefault("queue.rabbitmq.routing-key", "user.activity")
	v.SetDefault("queue.rabbitmq.durable", true)
	v.SetDefault("security.cors-origins", []string{"*"})
	v.SetDefault("security.session-cookie-name", "session_token")
	v.SetDefault("security.session-ttl-days", 7)
	v.SetDefault("security.secure-cookie", true)
	v.SetDefault("security.expose-session-error", true)
	v.SetDefault("server.port", "8001")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read-timeout", 15)
	v.SetDefault("server.write-timeout", 60)
	v.SetDefault("server.idle-timeout", 120)
	v.SetDefault("cache.session-expiration-minutes", 15)
	v.SetDefault("cache.dashboard-stat-key", "dashboard:stats")
	v.SetDefault("cache.dashboard-expiration-minutes", 5)
	v.SetDefault("identity.base-url", "https://demobackend.emergentagent.com")
	v.SetDefault("identity.timeout", 10)
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-5")
	v.SetDefault("llm.timeout", 20)
	v.SetDefault("llm.fallback-chars", 100)
}

func applyEnv(cfg *Configuration) {
	if mongoUri := firstEnv("MONGO_URL", "MONGODB_URL"); mongoUri != "" {
		cfg.Database.Url = mongoUri
	}

	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		cfg.Database.DbName = dbName
	}

	if redisUrl := os.Getenv("REDIS_URL"); redisUrl != "" {
		cfg.Redis.Url = redisUrl
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			cfg.Redis.Db = db
		}
	}

	if rabbitmqUrl := os.Getenv("RABBITMQ_URL"); rabbitmqUrl != "" {
		cfg.Queue.RabbitMQ.Url = rabbitmqUrl
	}

	if llmKey := os.Getenv("EMERGENT_LLM_KEY"); llmKey != "" {
		cfg.LLM.ApiKey = llmKey
	}

	if llmBaseURL := os.Getenv("LLM_BASE_URL"); llmBaseURL != "" {
		cfg.LLM.BaseURL = llmBaseURL
	}

	if llmModel := os.Getenv("LLM_MODEL"); llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Security.CorsOrigins = SplitOrigins(origins)
	}
	if len(cfg.Security.CorsOrigins) == 0 {
		cfg.Security.CorsOrigins = []string{"*"}
	}

	if identityURL := os.Getenv("IDENTITY_PROVIDER_URL"); identityURL != "" {
		cfg.Identity.BaseURL = identityURL
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logs.Level = level
	}
}

// SplitOrigins parses a comma-separated origin list, dropping blanks.
func SplitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
