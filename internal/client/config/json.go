package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/awardkeeper/internal/flagx"
	"github.com/dmitrijs2005/awardkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only keys
// present in the file override the current values.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	Transport           *string         `json:"transport"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	DatabasePath        *string         `json:"database_path"`
	AccessToken         *string         `json:"access_token"`
	LogLevel            *string         `json:"log_level"`
	S3                  *JsonS3         `json:"s3"`
}

type JsonS3 struct {
	Region       *string `json:"region"`
	Bucket       *string `json:"bucket"`
	BaseEndpoint *string `json:"base_endpoint"`
	AccessKey    *string `json:"access_key"`
	SecretKey    *string `json:"secret_key"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.Transport, jc.Transport)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.AccessToken, jc.AccessToken)
	setString(&cfg.LogLevel, jc.LogLevel)

	if s3 := jc.S3; s3 != nil {
		setString(&cfg.S3.Region, s3.Region)
		setString(&cfg.S3.Bucket, s3.Bucket)
		setString(&cfg.S3.BaseEndpoint, s3.BaseEndpoint)
		setString(&cfg.S3.AccessKey, s3.AccessKey)
		setString(&cfg.S3.SecretKey, s3.SecretKey)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
