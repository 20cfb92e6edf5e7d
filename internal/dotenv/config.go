package dotenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the values loaded from an env file next to a snapshot of the
// process environment. It replaces loading .env into the process
// environment: callers pass it to whatever needs configuration.
type Config struct {
	Path string

	// Loaded is true once Path has been read successfully.
	Loaded bool
	// Overwrite makes file values take precedence over the process environment.
	Overwrite bool

	values  map[string]string
	environ map[string]string
}

// NewConfig returns an unloaded Config for path. environ is a list of
// KEY=VALUE strings as returned by os.Environ.
func NewConfig(path string, environ []string) *Config {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return &Config{Path: path, environ: env}
}

// Load reads the env file. Without force, values already present in the
// process environment keep precedence; with force, file values win.
// Lines that are not variables are ignored, as are variables godotenv
// cannot parse. On failure the previous values are kept and Loaded is false.
func (c *Config) Load(force bool) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		c.Loaded = false
		return fmt.Errorf("loading '%s': %w", c.Path, err)
	}

	c.values = parseValues(string(data))
	c.Overwrite = force
	c.Loaded = true
	return nil
}

// Get returns the value for key and whether it is set.
func (c *Config) Get(key string) (string, bool) {
	if c.Overwrite {
		if v, ok := c.values[key]; ok {
			return v, true
		}
	}
	if v, ok := c.environ[key]; ok {
		return v, true
	}
	v, ok := c.values[key]
	return v, ok
}

// Values returns a copy of the values read from the file.
func (c *Config) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// parseValues hands the variable lines of text to godotenv. When godotenv
// rejects the set, each line is parsed on its own and the bad ones are skipped.
func parseValues(text string) map[string]string {
	var vars []string
	for _, line := range ParseLines(text) {
		if line.IsVar {
			vars = append(vars, line.String())
		}
	}

	if values, err := godotenv.Unmarshal(strings.Join(vars, "\n")); err == nil {
		return values
	}

	values := make(map[string]string, len(vars))
	for _, v := range vars {
		parsed, err := godotenv.Unmarshal(v)
		if err != nil {
			continue
		}
		for k, val := range parsed {
			values[k] = val
		}
	}
	return values
}
