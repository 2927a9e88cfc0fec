package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"schultafel/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("schule.token", "SCHULTAFEL_API_TOKEN")
	viper.BindEnv("schule.baseUrl", "SCHULTAFEL_BASE_URL")
	viper.BindEnv("logger.level", "SCHULTAFEL_LOG_LEVEL")
	viper.BindEnv("journal.refreshInterval", "SCHULTAFEL_REFRESH_INTERVAL")
	viper.BindEnv("journal.searchHorizonDays", "SCHULTAFEL_SEARCH_HORIZON")
	viper.BindEnv("cache.enabled", "SCHULTAFEL_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SCHULTAFEL_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Schule.Token == "" {
		return nil, fmt.Errorf("no API token configured (schule.token or SCHULTAFEL_API_TOKEN)")
	}

	conf.AppName = "Schultafel"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
