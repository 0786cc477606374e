package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the client command-line flags from args. A nil args
// slice means os.Args[1:].
//
// Flags:
//
//	-a backend base URL (e.g. https://api.example.com)
//	-d session database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval dashboard refresh interval (e.g., "1m")
//	-download-dir directory for downloaded documents
//	-log-path log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	if args == nil {
		args = os.Args[1:]
	}

	fs := flag.NewFlagSet("salestrak", flag.ContinueOnError)

	var (
		serverAddress   string
		databaseDSN     string
		jsonConfigPath  string
		requestTimeout  time.Duration
		refreshInterval time.Duration
		downloadDir     string
		logPath         string
	)

	fs.StringVar(&serverAddress, "a", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Dashboard refresh interval (e.g., 1m)")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded documents")
	fs.StringVar(&logPath, "log-path", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{DownloadDir: downloadDir},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
