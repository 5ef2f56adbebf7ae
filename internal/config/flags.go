package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-url env store API base URL
//	-token bearer token for the env store
//	-account account identifier (defaults to the token subject)
//	-site site identifier
//	-context deploy context or branch name (e.g. "prod", "branch:feat/x")
//	-scope pipeline scope (builds|functions|runtime|post_processing|any)
//	-a proxy listen address in format [host]:[port]
//	-upstream functions server base URL the proxy forwards to
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-log-file log file path for the interactive client
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var apiURL string
	var token string
	var accountID string
	var siteID string
	var resolveContext string
	var resolveScope string
	var serverAddress string
	var upstreamURL string
	var requestTimeout time.Duration
	var logFile string
	var jsonConfigPath string

	flag.StringVar(&apiURL, "api-url", "", "Env store API base URL")
	flag.StringVar(&token, "token", "", "Env store bearer token")
	flag.StringVar(&accountID, "account", "", "Account ID")
	flag.StringVar(&siteID, "site", "", "Site ID")
	flag.StringVar(&resolveContext, "context", "", "Deploy context or branch name")
	flag.StringVar(&resolveScope, "scope", "", "Pipeline scope")
	flag.StringVar(&serverAddress, "a", "", "Proxy listen address host:port")
	flag.StringVar(&upstreamURL, "upstream", "", "Functions server base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		API: API{
			BaseURL: apiURL,
			Token:   token,
		},
		Site: Site{
			AccountID: accountID,
			SiteID:    siteID,
		},
		Resolve: Resolve{
			Context: resolveContext,
			Scope:   resolveScope,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			UpstreamURL:    upstreamURL,
			RequestTimeout: requestTimeout,
		},
		LogFile:      logFile,
		JSONFilePath: jsonConfigPath,
	}
}
