package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Output.FilePrefix = strings.TrimSpace(c.Output.FilePrefix)
	if c.Output.FilePrefix == "" {
		c.Output.FilePrefix = defaultFilePrefix
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if strings.TrimSpace(c.Logging.LogDir) != "" {
		expanded, err := expandPath(c.Logging.LogDir)
		if err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
		c.Logging.LogDir = expanded
	} else {
		c.Logging.LogDir = ""
	}
	return nil
}
