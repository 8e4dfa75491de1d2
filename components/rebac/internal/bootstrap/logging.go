package bootstrap

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/midaz/v3/common/mlog"
)

// zapLogger adapts go.uber.org/zap's sugared logger to common/mlog.Logger,
// the interface the rest of the codebase carries on context.Context
// (common.ContextWithLogger) rather than through a package-level
// logger. Grounded on common/mzap.InitializeLogger's shape, minus its
// otel log-bridge wiring: that bridge has an internal field mismatch
// in this retrieval pack's copy (ZapWithTraceLogger.Logger is typed
// *otelzap.SugaredLogger but injector.go assigns it a *zap.SugaredLogger)
// and ENABLE_TELEMETRY/OTEL_EXPORTER_OTLP_ENDPOINT aren't otherwise
// exercised by anything rebacd does, so this wrapper sticks to a plain
// zap core instead of inheriting that defect.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ mlog.Logger = (*zapLogger)(nil)

// newZapLogger builds a zapLogger. Production config is selected via
// ENV_NAME=production, matching the teacher's convention; LOG_LEVEL
// overrides the default level for either config.
func newZapLogger(envName, logLevel string) (*zapLogger, error) {
	var zapCfg zap.Config

	if envName == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if logLevel != "" {
		var lvl zapcore.Level
		if err := lvl.Set(logLevel); err == nil {
			zapCfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	zapCfg.DisableStacktrace = true

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

func (l *zapLogger) Info(args ...any)                  { l.sugar.Info(args...) }
func (l *zapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Infoln(args ...any)                { l.sugar.Infoln(args...) }
func (l *zapLogger) Error(args ...any)                 { l.sugar.Error(args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
func (l *zapLogger) Errorln(args ...any)               { l.sugar.Errorln(args...) }
func (l *zapLogger) Warn(args ...any)                  { l.sugar.Warn(args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Warnln(args ...any)                { l.sugar.Warnln(args...) }
func (l *zapLogger) Debug(args ...any)                 { l.sugar.Debug(args...) }
func (l *zapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Debugln(args ...any)               { l.sugar.Debugln(args...) }
func (l *zapLogger) Fatal(args ...any)                 { l.sugar.Fatal(args...) }
func (l *zapLogger) Fatalf(format string, args ...any) { l.sugar.Fatalf(format, args...) }
func (l *zapLogger) Fatalln(args ...any)               { l.sugar.Fatalln(args...) }

func (l *zapLogger) WithFields(fields ...any) mlog.Logger {
	return &zapLogger{sugar: l.sugar.With(fields...)}
}

func (l *zapLogger) Sync() error {
	_ = os.Stdout.Sync()
	return l.sugar.Sync()
}
