package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"gorain/internal/errors"
)

// Config represents the complete analysis configuration
type Config struct {
	Radar    RadarConfig
	Spectral SpectralConfig
	Engine   EngineConfig
}

// RadarConfig holds radar composite conventions
type RadarConfig struct {
	RainThreshold float64 // mm/h, pixels at or above count as rainy
	NoData        float64 // marker for pixels outside the composite
	ZRA           float64 // Z-R power law prefactor (Z = A*R^b)
	ZRB           float64 // Z-R power law exponent
	ResolutionKM  float64 // grid spacing in km per pixel
}

// SpectralConfig holds Fourier analysis settings
type SpectralConfig struct {
	FFTBackend   string  // "gonum" or "godsp"
	Window       string  // "none", "hanning" or "blackman"
	ScaleBreakKM float64 // wavelength separating the two spectral slope fits
}

// EngineConfig holds sweep/ensemble execution settings
type EngineConfig struct {
	MaxParallel int
	BaseSeed    int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	// .env is optional; explicit environment variables win over file entries
	_ = godotenv.Load()

	config := &Config{
		Radar:    loadRadarConfig(),
		Spectral: loadSpectralConfig(),
		Engine:   loadEngineConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadRadarConfig() RadarConfig {
	return RadarConfig{
		RainThreshold: getEnvFloatOrDefault("RAIN_THRESHOLD", 0.1),
		NoData:        getEnvFloatOrDefault("NO_DATA", -999),
		ZRA:           getEnvFloatOrDefault("ZR_A", 316),
		ZRB:           getEnvFloatOrDefault("ZR_B", 1.5),
		ResolutionKM:  getEnvFloatOrDefault("RESOLUTION_KM", 1.0),
	}
}

func loadSpectralConfig() SpectralConfig {
	return SpectralConfig{
		FFTBackend:   getEnvOrDefault("FFT_BACKEND", "gonum"),
		Window:       getEnvOrDefault("SPECTRAL_WINDOW", "blackman"),
		ScaleBreakKM: getEnvFloatOrDefault("SCALE_BREAK_KM", 20),
	}
}

func loadEngineConfig() EngineConfig {
	return EngineConfig{
		MaxParallel: getEnvIntOrDefault("MAX_PARALLEL", runtime.NumCPU()),
		BaseSeed:    getEnvInt64OrDefault("BASE_SEED", 42),
	}
}

func validateConfig(config *Config) error {
	if config.Radar.RainThreshold <= 0 {
		return errors.ConfigInvalid("RAIN_THRESHOLD must be positive")
	}
	if config.Radar.ZRA <= 0 || config.Radar.ZRB <= 0 {
		return errors.ConfigInvalid("Z-R coefficients must be positive")
	}
	if config.Radar.ResolutionKM <= 0 {
		return errors.ConfigInvalid("RESOLUTION_KM must be positive")
	}
	switch config.Spectral.FFTBackend {
	case "gonum", "godsp":
	default:
		return errors.ConfigInvalid("FFT_BACKEND must be gonum or godsp")
	}
	switch config.Spectral.Window {
	case "none", "hanning", "blackman":
	default:
		return errors.ConfigInvalid("SPECTRAL_WINDOW must be none, hanning or blackman")
	}
	if config.Spectral.ScaleBreakKM <= 0 {
		return errors.ConfigInvalid("SCALE_BREAK_KM must be positive")
	}
	if config.Engine.MaxParallel < 1 {
		return errors.ConfigInvalid("MAX_PARALLEL must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
