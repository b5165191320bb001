// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The dataset can live on disk or behind a URL, and the realtime feed is
// optional.
package config
