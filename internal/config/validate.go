package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.Bee.PangramBonus < 0 {
		return fmt.Errorf("bee.pangram_bonus must be >= 0 (got %d)", c.Bee.PangramBonus)
	}

	if c.Source.URL != "" {
		u, err := url.Parse(c.Source.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("source.url %q is not an absolute URL", c.Source.URL)
		}
	}
	if c.Source.FetchTimeout <= 0 {
		return fmt.Errorf("source.fetch_timeout must be > 0 (got %v)", c.Source.FetchTimeout)
	}

	return nil
}
