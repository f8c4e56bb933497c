package main

import (
	"fmt"
	"io"
	"os"

	"github.com/professor875/design-pattern/core"
	"github.com/professor875/design-pattern/decorator_mode"
	"github.com/professor875/design-pattern/factory_mode"
	"github.com/professor875/design-pattern/global"
	"github.com/professor875/design-pattern/observer_mode"
	"github.com/professor875/design-pattern/strategy_mode"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	//启动配置读取
	config, err := core.Viper("./")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	global.G_Viper = config
	//启动日志
	global.GLog = core.Zap(global.G_Config.Log)
	defer global.GLog.Sync()
	logConfigSource(config)

	if err := run(os.Stdout, global.G_Config); err != nil {
		global.GLog.Error("demo failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logConfigSource repeats what core.Viper found, which it logged before the
// real logger was installed.
func logConfigSource(config *viper.Viper) {
	if file := config.ConfigFileUsed(); file != "" {
		global.GLog.Info("config loaded", zap.String("file", file))
		return
	}
	global.GLog.Warn("config file not found, using defaults")
}

func run(out io.Writer, cfg global.Config) error {
	if err := runDecorator(out, cfg.Coffee); err != nil {
		return err
	}
	if err := runFactory(out, cfg.Notification); err != nil {
		return err
	}
	if err := runObserver(out); err != nil {
		return err
	}
	return runStrategy(out, cfg.Payment)
}

func runDecorator(out io.Writer, cfg global.Coffee) error {
	menu := decorator_mode.NewMenu(cfg)
	for _, condiments := range cfg.Orders {
		coffee, err := menu.Order(condiments...)
		if err != nil {
			return err
		}
		if err := decorator_mode.Serve(out, coffee); err != nil {
			return err
		}
	}
	return nil
}

func runFactory(out io.Writer, cfg global.Notification) error {
	factory := factory_mode.NewNotificationFactory(out)
	for _, kind := range cfg.Kinds {
		n, err := factory.CreateNotification(kind)
		if err != nil {
			return err
		}
		if err := n.Send(cfg.Messages[kind]); err != nil {
			return err
		}
	}
	return nil
}

func runObserver(out io.Writer) error {
	station := observer_mode.NewWeatherStation()
	phone := observer_mode.NewPhoneDisplay(station, out)
	tv := observer_mode.NewTVDisplay(station, out)
	if err := phone.Register(station); err != nil {
		return err
	}
	if err := tv.Register(station); err != nil {
		return err
	}

	if err := station.SetWeatherData(25, 15); err != nil {
		return err
	}
	station.RemoveObserver(tv)
	return station.SetWeatherData(30, 20)
}

func runStrategy(out io.Writer, cfg global.Payment) error {
	for _, order := range cfg.Orders {
		strategy, err := strategy_mode.NewStrategy(strategy_mode.Method(order.Method), out)
		if err != nil {
			return err
		}
		ctx, err := strategy_mode.NewPaymentContext(strategy)
		if err != nil {
			return err
		}
		if err := ctx.ExecutePayment(order.Amount); err != nil {
			return err
		}
	}
	return nil
}
