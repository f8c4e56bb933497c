package core

import (
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/professor875/design-pattern/global"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Viper loads config.yaml from dir into global.G_Config and keeps it in sync
// with the file. A missing file leaves the defaults in place.
func Viper(dir string) (*viper.Viper, error) {
	config := viper.New()
	config.SetConfigName("config")
	config.AddConfigPath(dir)
	//设置配置文件类型
	config.SetConfigType("yaml")
	setDefaults(config, global.DefaultConfig())

	found := true
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			global.GLog.Error("fatal error config file", zap.Error(err))
			return nil, fmt.Errorf("read config: %w", err)
		}
		found = false
		global.GLog.Warn("config file not found, using defaults", zap.String("dir", dir))
	}

	cfg, err := load(config)
	if err != nil {
		return nil, err
	}
	global.G_Config = cfg

	if found {
		config.WatchConfig()
		config.OnConfigChange(func(e fsnotify.Event) {
			global.GLog.Info("config file changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
			cfg, err := load(config)
			if err != nil {
				global.GLog.Error("unable to reload config", zap.Error(err))
				return
			}
			global.G_Config = cfg
		})
	}
	return config, nil
}

func load(config *viper.Viper) (global.Config, error) {
	var cfg global.Config
	if err := config.Unmarshal(&cfg); err != nil {
		global.GLog.Error("unable to unmarshal config", zap.Error(err))
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(config *viper.Viper, def global.Config) {
	config.SetDefault("log.director", def.Log.Director)
	config.SetDefault("log.level", def.Log.Level)
	config.SetDefault("log.max-size", def.Log.MaxSize)
	config.SetDefault("log.max-backups", def.Log.MaxBackups)
	config.SetDefault("log.max-age", def.Log.MaxAge)
	config.SetDefault("log.compress", def.Log.Compress)
	config.SetDefault("log.log-in-console", def.Log.LogInConsole)

	config.SetDefault("coffee.base-price", def.Coffee.BasePrice)
	for name, surcharge := range def.Coffee.Condiments {
		config.SetDefault("coffee.condiments."+name, surcharge)
	}
	config.SetDefault("coffee.orders", def.Coffee.Orders)

	config.SetDefault("notification.kinds", def.Notification.Kinds)
	for kind, msg := range def.Notification.Messages {
		config.SetDefault("notification.messages."+kind, msg)
	}

	orders := make([]map[string]interface{}, 0, len(def.Payment.Orders))
	for _, o := range def.Payment.Orders {
		orders = append(orders, map[string]interface{}{"method": o.Method, "amount": o.Amount})
	}
	config.SetDefault("payment.orders", orders)
}
