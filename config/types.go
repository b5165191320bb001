package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// DatasetConfig points at the network dataset (local path or URL)
type DatasetConfig struct {
	Path string `yaml:"path" validate:"omitempty"`
	URL  string `yaml:"url" validate:"omitempty,url"`
}

// FeedConfig contains realtime feed configuration
type FeedConfig struct {
	GTFSRTURL      string `yaml:"gtfsrtURL" validate:"omitempty,url"`
	NATSURL        string `yaml:"natsURL" validate:"omitempty"`
	NATSSubject    string `yaml:"natsSubject" validate:"omitempty"`
	PollIntervalMS int    `yaml:"pollIntervalMS" validate:"gte=0"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
}

// ViewportConfig is the default output viewport; zero means no projection
type ViewportConfig struct {
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Feed     FeedConfig     `yaml:"feed"`
	Viewport ViewportConfig `yaml:"viewport"`
}
