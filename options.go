package fallible

type Option func(*Config)

// Replaces the entire config - if used, should always be the first option
func WithConfig(cfg Config) Option {
	return func(oldCfg *Config) {
		*oldCfg = cfg
	}
}

// Sets the accepted age range, both ends inclusive
func WithAgeRange(minAge, maxAge int) Option {
	return func(cfg *Config) {
		cfg.MinAge = minAge
		cfg.MaxAge = maxAge
	}
}
