package config

import "time"

const (
	defaultHTTPAddress     = "localhost:4000"
	defaultTokenDuration   = 48 * time.Hour
	defaultSaltRounds      = 10
	defaultLogLevel        = "debug"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxUploadSize   = 5 << 20
	defaultUploadDir       = "upload"
	defaultStaticDir       = "static"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: defaultTokenDuration,
			SaltRounds:    defaultSaltRounds,
			LogLevel:      defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:        defaultHTTPAddress,
			RequestTimeout:     defaultRequestTimeout,
			ShutdownTimeout:    defaultShutdownTimeout,
			CORSAllowedOrigins: []string{"*"},
			MaxUploadSize:      defaultMaxUploadSize,
		},
		Storage: Storage{
			Files: Files{
				UploadDir: defaultUploadDir,
				StaticDir: defaultStaticDir,
			},
		},
	}
}
