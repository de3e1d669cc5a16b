// Package logging 负责构建 codecounter 使用的 zap 日志器。
// 日志统一写到 stderr，stdout 只留给统计报表。
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 控制日志级别与编码格式。
type Options struct {
	// Level 取值 debug/info/warn/error，空字符串视为 warn。
	Level string
	// JSON 为 true 时使用 JSON 编码，否则使用控制台编码。
	JSON bool
}

// New 按配置创建日志器。
// 低于 ERROR 的日志不带 caller，ERROR 及以上附带 caller 方便定位。
func New(writer io.Writer, options Options) (*zap.Logger, error) {
	level, err := parseLevel(options.Level)
	if err != nil {
		return nil, err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	if options.JSON {
		enc = zap.NewProductionEncoderConfig()
	}
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder

	encNoCaller := enc
	encNoCaller.CallerKey = ""

	encWithCaller := enc
	encWithCaller.CallerKey = "caller"

	newEncoder := zapcore.NewConsoleEncoder
	if options.JSON {
		newEncoder = zapcore.NewJSONEncoder
	}

	ws := zapcore.Lock(zapcore.AddSync(writer))

	coreNoCaller := zapcore.NewCore(
		newEncoder(encNoCaller), ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= level && lvl < zapcore.ErrorLevel }),
	)
	coreWithCaller := zapcore.NewCore(
		newEncoder(encWithCaller), ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= level && lvl >= zapcore.ErrorLevel }),
	)

	return zap.New(
		zapcore.NewTee(coreNoCaller, coreWithCaller),
		zap.AddCaller(),
	), nil
}

// parseLevel 把字符串转换为 zap 日志级别。
func parseLevel(value string) (zapcore.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return zapcore.WarnLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(value))); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", value, err)
	}
	return level, nil
}
