package logger

import (
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON logger on stdout, teed into a rotating file when LOG_FILE is set.
func New() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if path := viper.GetString("LOG_FILE"); path != "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(newRotatingFile(path)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    viper.GetInt("LOG_MAX_SIZE_MB"),
		MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
		MaxAge:     viper.GetInt("LOG_MAX_AGE_DAYS"),
		Compress:   true,
	}
}
