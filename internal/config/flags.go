package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. "http://localhost:8080/api")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-credentials-file path of the local credential store file
//	-health-interval backend health poll interval (e.g. "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var credentialsPath string
	var healthInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&credentialsPath, "credentials-file", "", "Credential store file path")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Health poll interval (e.g., 30s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CredentialsPath: credentialsPath,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
