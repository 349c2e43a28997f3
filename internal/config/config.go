package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 5 * time.Second

// Config holds one load run's settings. It is constructed once by the
// loader and passed by value into the core; nothing mutates it afterwards.
type Config struct {
	TargetURL  string        `mapstructure:"target"`
	Processes  int           `mapstructure:"processes"`
	Requests   int           `mapstructure:"requests"`
	Rate       int           `mapstructure:"rate"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Verbose    bool          `mapstructure:"verbose"`
	JSONOutput bool          `mapstructure:"json_output"`
	ConfigFile string        `mapstructure:"-"`
}

// ValidationError aggregates every configuration issue found in one pass.
type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

func (c Config) Validate() error {
	var issues []string

	target := strings.TrimSpace(c.TargetURL)
	if target == "" {
		issues = append(issues, "target URL is required (use --help for usage information)")
	} else if parsed, err := url.Parse(target); err != nil || !parsed.IsAbs() || parsed.Host == "" {
		issues = append(issues, fmt.Sprintf("target URL %q must be a valid absolute URL", target))
	}

	if c.Processes < 1 {
		issues = append(issues, "processes must be >= 1")
	}
	if c.Requests < 1 {
		issues = append(issues, "requests must be >= 1")
	}
	if c.Rate < 0 {
		issues = append(issues, "rate must be >= 0")
	}
	if c.Timeout < 0 {
		issues = append(issues, "timeout must be >= 0")
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}
	return nil
}
