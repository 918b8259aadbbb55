// Package config provides configuration management for the floor-plan tool.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv). Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Plan: chair types and wall separators (PLAN_CHAIR_TYPES, PLAN_SEPARATORS)
//   - Server: HTTP port and API key (SERVER_PORT, SERVER_API_KEY)
//   - Storage: S3/MinIO credentials and the bucket holding remote plans
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	legend, err := cfg.Plan.Legend()
package config
