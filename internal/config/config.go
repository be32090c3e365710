package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Study    StudyConfig    `mapstructure:"study"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// StudyConfig tunes the mastery math. Zero values mean "use defaults".
type StudyConfig struct {
	// MasteryMinExposures overrides the minimum review count a word needs
	// before it can count as mastered.
	MasteryMinExposures int `mapstructure:"mastery_min_exposures" validate:"gte=0"`
}
