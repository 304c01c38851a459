package qisbn

// DefaultShots is the number of repeated trials run per validation.
const DefaultShots = 300

type Config struct {
	Shots int
	// Seed fixes the sampler's random source. Zero seeds from the clock.
	Seed uint64
}

func NewConfig() *Config {
	return &Config{
		Shots: DefaultShots,
	}
}

// shots returns the configured shot count, falling back to the default.
func (c *Config) shots() int {
	if c != nil && c.Shots > 0 {
		return c.Shots
	}
	return DefaultShots
}

func (c *Config) seed() uint64 {
	if c == nil {
		return 0
	}
	return c.Seed
}
