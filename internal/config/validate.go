package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateFilter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if c.Output.DocsPerFile < 1 {
		return errors.New("output.docs_per_file must be at least 1")
	}
	if c.Output.FilesPerDir < 1 || c.Output.FilesPerDir > 100 {
		return errors.New("output.files_per_dir must be between 1 and 100 (two-digit file names)")
	}
	if strings.ContainsAny(c.Output.FilePrefix, `/\`) {
		return fmt.Errorf("output.file_prefix %q must not contain path separators", c.Output.FilePrefix)
	}
	return nil
}

func (c *Config) validateFilter() error {
	if c.Filter.MinDocLength < 0 {
		return errors.New("filter.min_doc_length must not be negative")
	}
	if c.Filter.MinHiraganaRatio < 0 || c.Filter.MinHiraganaRatio > 1 {
		return errors.New("filter.min_hiragana_ratio must be between 0 and 1")
	}
	if c.Filter.MaxLineRepetition <= 0 || c.Filter.MaxLineRepetition > 1 {
		return errors.New("filter.max_line_repetition must be greater than 0 and at most 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
