package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type so operators can write "24h" in config files.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			UploadsDir    string `json:"uploads_dir"`
			ThumbnailsDir string `json:"thumbnails_dir"`
			PublicBaseURL string `json:"public_base_url"`

			S3 struct {
				Endpoint  string `json:"endpoint"`
				Region    string `json:"region"`
				Bucket    string `json:"bucket"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				UploadsDir:    jsonCfg.Storage.Files.UploadsDir,
				ThumbnailsDir: jsonCfg.Storage.Files.ThumbnailsDir,
				PublicBaseURL: jsonCfg.Storage.Files.PublicBaseURL,
				S3: S3{
					Endpoint:  jsonCfg.Storage.Files.S3.Endpoint,
					Region:    jsonCfg.Storage.Files.S3.Region,
					Bucket:    jsonCfg.Storage.Files.S3.Bucket,
					AccessKey: jsonCfg.Storage.Files.S3.AccessKey,
					SecretKey: jsonCfg.Storage.Files.S3.SecretKey,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "24h", "30s".
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
