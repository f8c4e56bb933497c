package global

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// GLog defaults to a no-op logger until main installs core.Zap().
	GLog     = zap.NewNop()
	G_Viper  *viper.Viper
	G_Config = DefaultConfig()
)

type Config struct {
	Log          Log          `mapstructure:"log"`
	Coffee       Coffee       `mapstructure:"coffee"`
	Notification Notification `mapstructure:"notification"`
	Payment      Payment      `mapstructure:"payment"`
}

type Log struct {
	Director     string `mapstructure:"director"`
	Level        string `mapstructure:"level"`
	MaxSize      int    `mapstructure:"max-size"`    // MB
	MaxBackups   int    `mapstructure:"max-backups"` // 旧文件的个数
	MaxAge       int    `mapstructure:"max-age"`     // 天数
	Compress     bool   `mapstructure:"compress"`
	LogInConsole bool   `mapstructure:"log-in-console"`
}

type Coffee struct {
	BasePrice  float64            `mapstructure:"base-price"`
	Condiments map[string]float64 `mapstructure:"condiments"`
	Orders     [][]string         `mapstructure:"orders"`
}

type Notification struct {
	Kinds    []string          `mapstructure:"kinds"`
	Messages map[string]string `mapstructure:"messages"` // 按类型的消息内容
}

type Payment struct {
	Orders []PaymentOrder `mapstructure:"orders"`
}

type PaymentOrder struct {
	Method string  `mapstructure:"method"`
	Amount float64 `mapstructure:"amount"`
}

// DefaultConfig mirrors the values registered as viper defaults.
func DefaultConfig() Config {
	return Config{
		Log: Log{
			Director:   "./Log",
			Level:      "info",
			MaxSize:    1,
			MaxBackups: 1,
			MaxAge:     1,
		},
		Coffee: Coffee{
			BasePrice: 5,
			Condiments: map[string]float64{
				"milk":  2,
				"sugar": 1,
			},
			Orders: [][]string{{}, {"milk"}, {"milk", "sugar"}},
		},
		Notification: Notification{
			Kinds: []string{"email", "sms"},
			Messages: map[string]string{
				"email": "Hello via Email!",
				"sms":   "Hello via SMS!",
			},
		},
		Payment: Payment{
			Orders: []PaymentOrder{
				{Method: "paypal", Amount: 100},
				{Method: "credit-card", Amount: 250},
				{Method: "bank-transfer", Amount: 500},
			},
		},
	}
}
