package configs

import "time"

// Delivery tunes the ad delivery engine.
type Delivery struct {
	// Storage selects the persistence backend: "postgres" or "memory".
	Storage string `env:"STORAGE" envDefault:"postgres" validate:"oneof=postgres memory"`
	// DuplicateWindow is the trailing period in which a repeated view of the
	// same ad in the same zone from the same IP is not charged again.
	DuplicateWindow time.Duration `env:"DUPLICATE_WINDOW" envDefault:"24h" validate:"gt=0"`
}
