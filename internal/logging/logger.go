// Package logging 构建 srcmetrics 使用的 zap 日志对象。
// 日志统一写入 stderr，避免污染 stdout 上的统计报告。
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建控制台格式的日志对象。
// 默认只输出 WARN 及以上级别，verbose 为 true 时输出 DEBUG。
func New(verbose bool) *zap.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter 与 New 相同，但允许指定输出目标，便于测试。
func NewWithWriter(writer io.Writer, verbose bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // 命令行工具不需要时间戳
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(writer)),
		level,
	)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

// OrNop 在 logger 为 nil 时返回空实现。
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
