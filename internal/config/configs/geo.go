package configs

import "time"

// Geo configures the external IP geolocation service and the cache that
// sits in front of it.
type Geo struct {
	// BaseURL of the lookup API. The client requests {BaseURL}/{ip}.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.ipgeolocation.example/v1" validate:"required,url"`
	// APIKey is sent as the key query parameter. An empty key makes every
	// lookup fail, which degrades to the UTC fallback context.
	APIKey string `env:"API_KEY" envDefault:""`
	// Timeout bounds one lookup including connect.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"4s" validate:"gt=0"`
	// CacheTTL is how long a cached lookup stays fresh.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"168h" validate:"gt=0"`
	// RateLimit is the sustained lookups per second allowed against the API.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"20" validate:"gt=0"`
	RateBurst int     `env:"RATE_BURST" envDefault:"10" validate:"gt=0"`
}
