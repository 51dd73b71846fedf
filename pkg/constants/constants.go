package constants

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	PageContext  ContextKey = "pageCtx"
	RequestIDKey ContextKey = "requestID"
	LocalizerKey ContextKey = "localizer"
	LocaleKey    ContextKey = "locale"
)
