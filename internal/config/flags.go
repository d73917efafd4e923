package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds the startup settings for the dashboard. Values come from
// flags first, then E2T_* environment variables, then defaults.
type Config struct {
	APIURL   string
	APIToken string
	LogFile  string
	Demo     bool
}

const defaultAPIURL = "http://localhost:8000"

// ParseFlags parses os.Args against the process environment.
func ParseFlags(version string) (*Config, error) {
	return ParseFlagsWithEnv(os.Args[1:], os.Getenv, version)
}

// ParseFlagsWithEnv is ParseFlags with the argument list and environment
// lookup supplied by the caller.
func ParseFlagsWithEnv(args []string, getenv func(string) string, version string) (*Config, error) {
	flags := flag.NewFlagSet("e2tboard", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "e2tboard — terminal dashboard for the E2T weekly competition\n\nUsage:\n  e2tboard [flags]\n\nFlags:\n")
		flags.PrintDefaults()
	}

	defURL := envOr(getenv, "E2T_API_URL", defaultAPIURL)
	apiURL := flags.String("api-url", defURL, "Base URL of the competition data API")
	flags.StringVar(apiURL, "u", defURL, "Base URL of the competition data API")
	token := flags.String("token", envOr(getenv, "E2T_API_TOKEN", ""), "Bearer token sent with API requests")
	logFile := flags.String("log-file", envOr(getenv, "E2T_LOG_FILE", ""), "Write debug logs to this file")
	demo := flags.Bool("demo", false, "Run against generated demo data instead of the API")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		fmt.Printf("e2tboard %s\n", version)
		os.Exit(0)
	}

	base := strings.TrimRight(strings.TrimSpace(*apiURL), "/")
	if !*demo {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", *apiURL, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid API URL %q: expected http(s)://host[:port]", *apiURL)
		}
	}

	return &Config{
		APIURL:   base,
		APIToken: strings.TrimSpace(*token),
		LogFile:  *logFile,
		Demo:     *demo,
	}, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}
