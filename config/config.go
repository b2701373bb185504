package config

import "os"

type Config struct {
	ServerPort   string
	ImportAPIURL string
	MaxFileSize  int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	importAPIURL := os.Getenv("IMPORT_API_URL")
	if importAPIURL == "" {
		importAPIURL = "http://localhost:3000/api/deposits/bulk"
	}

	return &Config{
		ServerPort:   serverPort,
		ImportAPIURL: importAPIURL,
		MaxFileSize:  10 * 1024 * 1024, // 10 MB
	}
}
