package pagination

import "go.uber.org/zap"

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger adapts a zap logger to Logger. A nil logger yields a no-op logger.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }
func (z *zapLogger) Info(msg string, args ...any)  { z.sugar.Infow(msg, args...) }
func (z *zapLogger) Warn(msg string, args ...any)  { z.sugar.Warnw(msg, args...) }
func (z *zapLogger) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }
