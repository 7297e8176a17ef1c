// Package config loads restkit settings from YAML files and the environment.
//
// Load resolves a config.yml and an optional .env file, overlays environment
// variables, and unmarshals the result into a caller-provided struct. Target
// selection — which API a test run hits, with which credentials — is the one
// external concern of this kit, and it flows through here.
//
//	var cfg config.ClientConfig
//	if err := config.Load("api-tests", &cfg); err != nil { ... }
//	client, err := httpclient.New(cfg.HTTPConfig())
package config
