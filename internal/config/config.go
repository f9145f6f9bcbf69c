package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DeviceConfigPath  string  // YAML device graph definition
	SampleRate        float64 // waveform sampling rate, Sa/s
	LogLevel          string
	SweepPoints       int     // amplitude sweep resolution
	SweepMaxAmplitude float64 // sweep upper bound, volts
	PlotPath          string  // Rabi curve output, empty disables
	PrintSequence     bool    // dump the first sweep point's sequence
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DeviceConfigPath:  getEnv("QCS_CONFIG_PATH", "configs/quantum_config.yaml"),
		SampleRate:        getEnvAsFloat("QCS_SAMPLE_RATE", 1e9),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SweepPoints:       getEnvAsInt("QCS_SWEEP_POINTS", 101),
		SweepMaxAmplitude: getEnvAsFloat("QCS_SWEEP_MAX_AMPLITUDE", 1.5),
		PlotPath:          getEnv("QCS_PLOT_PATH", "rabi_curve.png"),
		PrintSequence:     getEnvAsBool("QCS_PRINT_SEQUENCE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DeviceConfigPath == "" {
		return fmt.Errorf("QCS_CONFIG_PATH is required")
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("QCS_SAMPLE_RATE must be positive, got %g", c.SampleRate)
	}
	if c.SweepPoints < 2 {
		return fmt.Errorf("QCS_SWEEP_POINTS must be at least 2, got %d", c.SweepPoints)
	}
	if c.SweepMaxAmplitude < 0 {
		return fmt.Errorf("QCS_SWEEP_MAX_AMPLITUDE must not be negative, got %g", c.SweepMaxAmplitude)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
