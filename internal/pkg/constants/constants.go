package constants

// viper config keys
const (
	ViperAddr        = "addr"
	ViperDatabaseDSN = "database_dsn"
	ViperSecretKey   = "secret_key"
	ViperCORSOrigin  = "cors_origin"
	ViperLogLevel    = "log_level"
)

// echo context keys
const (
	CtxKeyUserID = "user_id"
)

// cookie keys
const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"
)
