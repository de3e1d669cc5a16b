// Package config 负责合并命令行参数、环境变量与配置文件。
// 优先级：命令行参数 > 环境变量（CODECOUNTER_ 前缀，可写在 .env 中）> 配置文件 > 默认值。
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix 是环境变量前缀，例如 CODECOUNTER_DETAILED=true。
const EnvPrefix = "CODECOUNTER"

// 配置键，同时也是命令行参数名。
const (
	KeyDetailed   = "detailed"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyIgnoreFile = "ignore-file"
	KeyLogLevel   = "log-level"
	KeyLogJSON    = "log-json"
	KeyConfig     = "config"
)

// Config 是一次运行的完整配置。
type Config struct {
	Detailed   bool
	Format     string
	Output     string
	IgnoreFile string
	LogLevel   string
	LogJSON    bool
}

// Load 读取配置。
// flags 中已注册的参数会绑定到对应配置键；配置文件缺失不视为错误。
func Load(flags *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyFormat, "table")
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if configPath := v.GetString(KeyConfig); configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".codecounter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.GetString(KeyConfig) != "" {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		Detailed:   v.GetBool(KeyDetailed),
		Format:     v.GetString(KeyFormat),
		Output:     v.GetString(KeyOutput),
		IgnoreFile: v.GetString(KeyIgnoreFile),
		LogLevel:   v.GetString(KeyLogLevel),
		LogJSON:    v.GetBool(KeyLogJSON),
	}, nil
}
