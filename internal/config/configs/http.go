package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"gt=0"`
	// TrustProxy makes the delivery endpoint read the viewer IP from
	// X-Forwarded-For / X-Real-IP. Enable only behind a trusted proxy.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
	// AllowedOrigins lists origins allowed to call the API from a browser.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// RequestTimeout bounds a single request end to end.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}
