package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay. Only set fields override defaults.
type fileConfig struct {
	OddsAPI struct {
		BaseURL     string            `yaml:"base_url"`
		Sports      []string          `yaml:"sports"`
		Regions     string            `yaml:"regions"`
		Markets     string            `yaml:"markets"`
		OddsFormat  string            `yaml:"odds_format"`
		Timeout     time.Duration     `yaml:"timeout"`
		CacheMaxAge time.Duration     `yaml:"cache_max_age"`
		Labels      map[string]string `yaml:"labels"`
	} `yaml:"odds_api"`
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

func (f fileConfig) applyTo(c *OddsAPIConfig) {
	o := f.OddsAPI
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if len(o.Sports) > 0 {
		c.Sports = o.Sports
	}
	if o.Regions != "" {
		c.Regions = o.Regions
	}
	if o.Markets != "" {
		c.Markets = o.Markets
	}
	if o.OddsFormat != "" {
		c.OddsFormat = o.OddsFormat
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.CacheMaxAge > 0 {
		c.CacheMaxAge = o.CacheMaxAge
	}
	for league, label := range o.Labels {
		if c.Labels == nil {
			c.Labels = make(map[string]string)
		}
		c.Labels[league] = label
	}
}
