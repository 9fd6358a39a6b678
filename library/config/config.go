package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelseyhightower/envconfig"

	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
	"github.com/sociopath-little-dragon/library-bd/pkg/kafka"
	"github.com/sociopath-little-dragon/library-bd/pkg/logger"
	"github.com/sociopath-little-dragon/library-bd/pkg/postgres"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Fines struct {
	DailyRate decimal.Decimal `envconfig:"FINES_DAILY_RATE" default:"10"`
	// Schedule is a cron spec for the overdue fines sweep.
	Schedule    string `envconfig:"FINES_SCHEDULE" default:"0 0 * * *"`
	AutoEnabled bool   `envconfig:"FINES_AUTO_ENABLED" default:"true"`
}

type Config struct {
	Server    HTTPServer  `yaml:"server"`
	Database  postgres.DB `yaml:"db"`
	Log       logger.Log  `yaml:"log"`
	Kafka     kafka.Config
	Auth      auth.Config
	Fines     Fines
	UseMockDB bool `envconfig:"USE_MOCK_DB"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options are applied on top of it.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func (c Config) Validate() error {
	if c.Fines.DailyRate.IsNegative() {
		return fmt.Errorf("FINES_DAILY_RATE must not be negative, got %s", c.Fines.DailyRate)
	}
	return nil
}

func printConfig(cfg Config) {
	jscfg, _ := serializer.JSON.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
