// Package config loads configuration structs from environment variables
// using struct tags, with optional .env file support for local development.
//
// Parsing is delegated to github.com/caarlos0/env; .env loading to
// github.com/joho/godotenv. Twelve-factor style: every knob of the SDK can
// be supplied through the environment.
package config
