package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type SchuleConfig struct {
	BaseUrl string        `yaml:"baseUrl" validate:"required|fullUrl"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

type JournalConfig struct {
	SearchHorizonDays int           `yaml:"searchHorizonDays" validate:"required|min:1"`
	SwitchHour        int           `yaml:"switchHour" validate:"uint|max:23"`
	RefreshInterval   time.Duration `yaml:"refreshInterval" validate:"required|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Schule      SchuleConfig  `yaml:"schule"`
	Journal     JournalConfig `yaml:"journal"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
