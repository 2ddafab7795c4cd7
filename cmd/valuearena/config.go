package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type Config struct {
	Host         string
	WebPort      string
	SSHPort      string
	HostKeyPath  string
	CatalogPath  string
	GlamourStyle string
	Verbose      bool
}

func loadConfig() Config {
	return Config{
		Host:         getEnv("VALUEARENA_HOST", "0.0.0.0"),
		WebPort:      getEnv("VALUEARENA_WEB_PORT", "8081"),
		SSHPort:      getEnv("VALUEARENA_SSH_PORT", "2222"),
		HostKeyPath:  getEnv("VALUEARENA_HOST_KEY", ".ssh/value_arena"),
		CatalogPath:  getEnv("VALUEARENA_CATALOG", ""),
		GlamourStyle: getEnv("VALUEARENA_GLAMOUR_STYLE", "dark"),
		Verbose:      getBoolEnv("VALUEARENA_VERBOSE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// bindFlags registers flags whose defaults come from the environment, so an
// explicit flag wins over VALUEARENA_* and that wins over the built-in value.
func (c *Config) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&c.Host, "host", c.Host, "address to bind (VALUEARENA_HOST)")
	f.StringVar(&c.WebPort, "web-port", c.WebPort, "HTTP port (VALUEARENA_WEB_PORT)")
	f.StringVar(&c.SSHPort, "ssh-port", c.SSHPort, "SSH port for the terminal view, empty disables it (VALUEARENA_SSH_PORT)")
	f.StringVar(&c.HostKeyPath, "host-key", c.HostKeyPath, "SSH host key path, generated when missing (VALUEARENA_HOST_KEY)")
	f.StringVar(&c.GlamourStyle, "glamour-style", c.GlamourStyle, "terminal markdown style (VALUEARENA_GLAMOUR_STYLE)")
}
