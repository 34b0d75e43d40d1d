package cerror

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the logger used for error responses.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func errorLogger(message string, status int) {
	if status >= 500 {
		logger.Error("[Server Error]", zap.Int("status", status), zap.String("message", message))
		return
	}
	logger.Warn("[Client Error]", zap.Int("status", status), zap.String("message", message))
}
