package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKeyBase64 string   `json:"encryption_key_base64"`
		HashKey             string   `json:"hash_key"`
		Version             string   `json:"version"`
		ReservationTTL      Duration `json:"reservation_ttl"`
		LogLevel            string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`

		Files struct {
			RegistryFile string `json:"registry_file"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		GeminiAPIKey   string   `json:"gemini_api_key"`
		GeminiModel    string   `json:"gemini_model"`
		GeminiBaseURL  string   `json:"gemini_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKeyBase64: jsonCfg.App.EncryptionKeyBase64,
			HashKey:             jsonCfg.App.HashKey,
			Version:             jsonCfg.App.Version,
			ReservationTTL:      time.Duration(jsonCfg.App.ReservationTTL),
			LogLevel:            jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
			Files: Files{
				RegistryFile: jsonCfg.Storage.Files.RegistryFile,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			GeminiAPIKey:   jsonCfg.Adapter.GeminiAPIKey,
			GeminiModel:    jsonCfg.Adapter.GeminiModel,
			GeminiBaseURL:  jsonCfg.Adapter.GeminiBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
