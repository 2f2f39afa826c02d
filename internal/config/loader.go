// Package config handles environment-driven configuration and the optional
// defaults file.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
)

// Environment variables consulted by Load.
const (
	EnvShebang  = "NIXSHELL_ARGS_SHEBANG"
	EnvLine     = "NIXSHELL_ARGS_LINE"
	EnvDebug    = "NIXSHELL_ARGS_DEBUG"
	EnvDefaults = "NIXSHELL_ARGS_DEFAULTS"
	EnvNoColor  = "NO_COLOR"
)

// Config represents the loaded configuration.
type Config struct {
	// Parse in shebang mode
	Shebang bool
	// Read tokens from this line instead of the process arguments
	Line    string
	HasLine bool

	Debug   bool
	NoColor bool

	// Path of the defaults file and the tokens read from it
	DefaultsFile string
	Defaults     []string
}

// Load builds a Config from getenv, usually os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	config := &Config{
		Shebang:      getenv(EnvShebang) == "1",
		Line:         getenv(EnvLine),
		Debug:        getenv(EnvDebug) == "1",
		NoColor:      getenv(EnvNoColor) != "",
		DefaultsFile: getenv(EnvDefaults),
		Defaults:     []string{},
	}
	config.HasLine = config.Line != ""

	if config.DefaultsFile != "" && fileExists(config.DefaultsFile) {
		defaults, err := loadDefaultsFile(config.DefaultsFile)
		if err != nil {
			return config, fmt.Errorf("defaults file %s: %w", config.DefaultsFile, err)
		}
		config.Defaults = defaults
	}

	return config, nil
}

// Tokens returns the defaults followed by tokens.
func (c *Config) Tokens(tokens []string) []string {
	out := make([]string, 0, len(c.Defaults)+len(tokens))
	out = append(out, c.Defaults...)
	return append(out, tokens...)
}

func loadDefaultsFile(path string) ([]string, error) {
	tokens := []string{}

	file, err := os.Open(path)
	if err != nil {
		return tokens, err
	}
	defer file.Close()

	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shlex.Split(line)
		if err != nil {
			return tokens, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tokens = append(tokens, words...)
	}

	return tokens, scanner.Err()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
