package config

const (
	EnvPrefix = "inventory"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv   = "INVENTORY_APP_ENV"
	EnvPort     = "INVENTORY_APP_PORT"
	EnvLogLevel = "INVENTORY_LOG_LEVEL"

	EnvMongoURI      = "INVENTORY_MONGO_URI"
	EnvMongoDatabase = "INVENTORY_MONGO_DATABASE"

	EnvCORSAllowedOrigins = "INVENTORY_CORS_ALLOWED_ORIGINS"
	EnvMaxUploadMB        = "INVENTORY_MAX_UPLOAD_MB"
)
