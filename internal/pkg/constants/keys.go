package constants

// viper config keys
const (
	ViperHTTPAddr    = "http.addr"
	ViperDatabaseDSN = "database.dsn"
	ViperSecretKey   = "admin.secret"
	ViperDebug       = "debug"

	ViperRotationMaxConsecutive = "rotation.max_consecutive"
	ViperRotationLookback       = "rotation.lookback"
	ViperHistoryDefaultLimit    = "rotation.history_limit"

	ViperBackfillBaseURL = "backfill.base_url"
)

const (
	CookieKeySecretToken = "secret_token"

	CtxKeyRequestID = "request_id"
)
