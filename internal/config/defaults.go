package config

import "time"

// Defaults returns the built-in configuration every other source is merged onto.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ReservationTTL: time.Hour,
			LogLevel:       "info",
		},
		Storage: Storage{
			DB:    DB{MaxOpenConns: 10, ConnMaxLifetime: 30 * time.Minute},
			Files: Files{RegistryFile: "data/id.json"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 2 * time.Minute,
		},
		Adapter: Adapter{
			GeminiModel:    "gemini-1.5-flash",
			GeminiBaseURL:  "https://generativelanguage.googleapis.com",
			RequestTimeout: time.Minute,
		},
		Workers: Workers{
			SweepInterval: 10 * time.Minute,
		},
	}
}
