package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the optional JSON settings file.
type StructuredJSONConfig struct {
	App struct {
		ModName   string `json:"mod_name"`
		HostShape string `json:"host_shape"`
		LogLevel  string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		ConfigRoot string `json:"config_root"`
		FileName   string `json:"file_name"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Host struct {
		BaselinesPath string `json:"baselines_path"`
		OutputPath    string `json:"output_path"`
	} `json:"host,omitempty"`
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
			ModName:   jsonCfg.App.ModName,
			HostShape: jsonCfg.App.HostShape,
			LogLevel:  jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			ConfigRoot: jsonCfg.Storage.ConfigRoot,
			FileName:   jsonCfg.Storage.FileName,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Host: Host{
			BaselinesPath: jsonCfg.Host.BaselinesPath,
			OutputPath:    jsonCfg.Host.OutputPath,
		},
		JSONFilePath: jsonFilePath,
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
