package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contém as configurações da aplicação.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	SessionStore string `env:"SESSION_STORE" envDefault:"sqlite"` // sqlite | memory
	Database     DatabaseConfig
	JWT          JWTConfig
	Redis        RedisConfig
	Flow         FlowConfig
	CORS         CORSConfig
}

type DatabaseConfig struct {
	DSN string `env:"DB_DSN" envDefault:"./quizarena.db"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET" envDefault:"segredo_padrao_para_desenvolvimento"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"15m"`
}

// RedisConfig habilita a distribuição de eventos entre instâncias. URL vazia = só hub local.
type RedisConfig struct {
	URL           string `env:"REDIS_URL"`
	ChannelPrefix string `env:"REDIS_CHANNEL_PREFIX" envDefault:"quizarena:session:"`
}

type FlowConfig struct {
	// SerializeAllEvents serializa todos os eventos por sessão; false trava apenas resposta e roubo.
	SerializeAllEvents bool `env:"FLOW_SERIALIZE_ALL_EVENTS" envDefault:"true"`
	LockShards         int  `env:"LOCK_SHARDS" envDefault:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load carrega o .env (se existir) e as variáveis de ambiente.
func Load() (*Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}
	return cfg, nil
}

// Validate verifica os campos obrigatórios.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT não pode ser vazio")
	}
	if c.SessionStore != "sqlite" && c.SessionStore != "memory" {
		return fmt.Errorf("SESSION_STORE inválido: %q (use sqlite ou memory)", c.SessionStore)
	}
	if c.Database.DSN == "" {
		return errors.New("DB_DSN não pode ser vazio")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET não pode ser vazio")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("JWT_TTL deve ser positivo")
	}
	if c.Flow.LockShards <= 0 {
		return errors.New("LOCK_SHARDS deve ser > 0")
	}
	return nil
}
