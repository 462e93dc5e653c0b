package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`

	DatasetPath string `yaml:"dataset-path" env:"DATASET_PATH" env-default:"./dataset/tic-tac-toe.data"`
	MetricsPath string `yaml:"metrics-path" env:"METRICS_PATH" env-default:"metrics.csv"`

	Training   Training   `yaml:"training"`
	AI         AI         `yaml:"ai"`
	ModelCache ModelCache `yaml:"model-cache"`
	Redis      Redis      `yaml:"redis"`
}

type Training struct {
	Seed         int64   `yaml:"seed" env:"TRAINING_SEED" env-default:"1"`
	TrainSplit   float64 `yaml:"train-split" env-default:"0.8"`
	Epochs       int     `yaml:"epochs" env-default:"1000"`
	LearningRate float64 `yaml:"learning-rate" env-default:"0.01"`
}

type AI struct {
	Delay            time.Duration `yaml:"delay" env-default:"500ms"`
	SecondBestChance float64       `yaml:"second-best-chance" env-default:"0.3"`
	Noise            float64       `yaml:"noise" env-default:"0.05"`
	Forgetfulness    float64       `yaml:"forgetfulness" env-default:"0.05"`
}

type ModelCache struct {
	Enabled bool `yaml:"enabled" env:"MODEL_CACHE_ENABLED" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
