package configs

import "time"

// Redis configures the optional Redis layer in front of the geolocation
// cache table. Leaving Addr empty disables it.
type Redis struct {
	Addr         string        `env:"ADDRESS" envDefault:""`
	Password     string        `env:"PASSWORD" envDefault:""`
	DB           int           `env:"DB" envDefault:"0" validate:"gte=0"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"2s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"500ms"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"500ms"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
