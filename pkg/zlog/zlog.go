package zlog

import (
	"os"
	"path/filepath"
	"sync"

	"NoteLink/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// 初始化日志：输出到 stdout，同时按大小滚动写入日志文件
func getLogger() *zap.Logger {
	once.Do(func() {
		conf := config.GetConfig()
		logPath := conf.LogConfig.LogPath
		if logPath == "" {
			logPath = "logs"
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder := zapcore.NewConsoleEncoder(encoderConfig)

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(logPath, "notelink.log"),
			MaxSize:    64, // MB
			MaxBackups: 7,
			MaxAge:     30, // 天
			Compress:   true,
		})
		stdoutWriter := zapcore.AddSync(os.Stdout)

		core := zapcore.NewCore(
			encoder,
			zapcore.NewMultiWriteSyncer(stdoutWriter, fileWriter),
			zapcore.DebugLevel,
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	})
	return logger
}

func Debug(msg string) {
	getLogger().Debug(msg)
}

func Info(msg string) {
	getLogger().Info(msg)
}

func Warn(msg string) {
	getLogger().Warn(msg)
}

func Error(msg string) {
	getLogger().Error(msg)
}

// Fatal 记录日志后退出进程
func Fatal(msg string) {
	getLogger().Fatal(msg)
}
