package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	API struct {
		BaseURL string   `json:"base_url"`
		Token   string   `json:"token"`
		Timeout Duration `json:"timeout"`
	} `json:"api,omitempty"`

	Site struct {
		AccountID string `json:"account_id"`
		SiteID    string `json:"site_id"`
	} `json:"site,omitempty"`

	Resolve struct {
		Context string `json:"context"`
		Scope   string `json:"scope"`
	} `json:"resolve,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		UpstreamURL    string   `json:"upstream_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	LogFile string `json:"log_file,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		API: API{
			BaseURL: jsonCfg.API.BaseURL,
			Token:   jsonCfg.API.Token,
			Timeout: time.Duration(jsonCfg.API.Timeout),
		},
		Site: Site{
			AccountID: jsonCfg.Site.AccountID,
			SiteID:    jsonCfg.Site.SiteID,
		},
		Resolve: Resolve{
			Context: jsonCfg.Resolve.Context,
			Scope:   jsonCfg.Resolve.Scope,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			UpstreamURL:    jsonCfg.Server.UpstreamURL,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		LogFile: jsonCfg.LogFile,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
