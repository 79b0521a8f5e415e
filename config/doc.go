// Package config provides configuration loading for applications embedding
// the HTTP engine.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with godotenv picking up .env files. ServiceConfig carries the
// base fields every embedding application needs; applications extend it by
// embedding it next to an engine.Config.
//
// # Usage
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Engine engine.Config `yaml:"engine" mapstructure:"engine"`
//	}
//
//	var cfg AppConfig
//	err := config.LoadConfig("my-service", &cfg)
package config
