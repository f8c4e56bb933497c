package core

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/professor875/design-pattern/global"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:   "msg",                       //结构化（json）输出：msg的key
		LevelKey:     "level",                     //日志级别的key（INFO，WARN，ERROR等）
		TimeKey:      "ts",                        //时间的key
		CallerKey:    "file",                      //打印日志的文件对应的Key
		EncodeLevel:  zapcore.CapitalLevelEncoder, //将日志级别转换成大写
		EncodeCaller: zapcore.ShortCallerEncoder,  //短文件路径（test/main.go:14）
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		},
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(int64(d) / 1000000)
		},
	}
}

func getCore(cfg global.Log, filename string, level zapcore.LevelEnabler) zapcore.Core {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Director, filename),
		MaxSize:    cfg.MaxSize,    //在进行切割之前，日志文件的最大大小（以MB为单位）
		MaxBackups: cfg.MaxBackups, //旧文件的个数
		MaxAge:     cfg.MaxAge,     //天数
		Compress:   cfg.Compress,
	}
	writer := zapcore.AddSync(lumberJackLogger)
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), writer, level)
}

// Zap builds the process logger: one rotated JSON file per level, teed together.
// Entries below cfg.Level are dropped everywhere.
func Zap(cfg global.Log) (logger *zap.Logger) {
	//判断文件夹是否存在，不存在就新建
	if _, err := os.Stat(cfg.Director); os.IsNotExist(err) {
		_ = os.MkdirAll(cfg.Director, os.ModePerm)
	}

	var minLevel zapcore.Level
	if err := minLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		minLevel = zapcore.InfoLevel
	}

	debugLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.DebugLevel && level >= minLevel
	})
	infoLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.InfoLevel && level >= minLevel
	})
	warnLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level == zap.WarnLevel && level >= minLevel
	})
	errorLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= zap.ErrorLevel //error 和以上的(fatal)错误信息都打印到error里
	})

	cores := []zapcore.Core{
		getCore(cfg, "debug.log", debugLog),
		getCore(cfg, "info.log", infoLog),
		getCore(cfg, "warn.log", warnLog),
		getCore(cfg, "error.log", errorLog),
	}
	if cfg.LogInConsole {
		consoleLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= minLevel
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig()),
			zapcore.Lock(os.Stderr),
			consoleLevel,
		))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
