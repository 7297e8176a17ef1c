package config

import (
	"time"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
	"github.com/kbukum/restkit/validation"
)

// AuthSettings configures authentication for the target API.
type AuthSettings struct {
	// Type is one of "", "none", "bearer", "basic", "apikey".
	Type     string `yaml:"type" mapstructure:"type" validate:"omitempty,oneof=none bearer basic apikey"`
	Token    string `yaml:"token" mapstructure:"token"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Key      string `yaml:"key" mapstructure:"key"`
	Header   string `yaml:"header" mapstructure:"header"`
}

// ClientConfig binds the settings a test run needs to reach its target API.
type ClientConfig struct {
	// Name identifies the suite in logs.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the target API root.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers for every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth selects and parameterizes the authentication method.
	Auth AuthSettings `yaml:"auth" mapstructure:"auth"`

	// Log configures suite logging.
	Log logger.Config `yaml:"log" mapstructure:"log"`
}

// Validate checks the configuration via struct tags and the log section.
func (c *ClientConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	c.Log.ApplyDefaults()
	return c.Log.Validate()
}

// HTTPConfig builds the httpclient configuration, wiring in a logger
// constructed from the log section.
func (c *ClientConfig) HTTPConfig() httpclient.Config {
	name := c.Name
	if name == "" {
		name = "restkit"
	}
	return httpclient.Config{
		Name:    name,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Headers: c.Headers,
		Auth:    c.Auth.authConfig(),
		Logger:  logger.New(&c.Log, name),
	}
}

// authConfig maps the declarative auth settings onto an AuthConfig.
func (a AuthSettings) authConfig() *httpclient.AuthConfig {
	switch a.Type {
	case "bearer":
		if a.Key != "" {
			return httpclient.BearerAuthWithFallback(a.Token, a.Key)
		}
		return httpclient.BearerAuth(a.Token)
	case "basic":
		return httpclient.BasicAuth(a.Username, a.Password)
	case "apikey":
		if a.Header != "" {
			return httpclient.APIKeyAuthHeader(a.Key, a.Header)
		}
		return httpclient.APIKeyAuth(a.Key)
	default:
		return nil
	}
}
