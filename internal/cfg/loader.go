package cfg

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// VaultSecretsPath is the path where Vault Agent writes secret files
const VaultSecretsPath = "/vault/secrets"

type Loader struct {
	errs []error
}

func NewLoader() *Loader {
	// Load Vault secrets before returning the loader
	loadVaultSecrets(VaultSecretsPath)
	return &Loader{errs: make([]error, 0)}
}

func (l *Loader) HasErrors() bool {
	return len(l.errs) > 0
}

func (l *Loader) Error() error {
	if len(l.errs) > 0 {
		return errors.Join(l.errs...)
	}
	return nil
}

// loadVaultSecrets loads *.env files written by Vault Agent.
// Variables already present in the environment take precedence.
func loadVaultSecrets(dir string) {
	files, err := filepath.Glob(filepath.Join(dir, "*.env"))
	if err != nil || len(files) == 0 {
		return
	}
	_ = godotenv.Load(files...)
}

func (l *Loader) requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		l.errs = append(l.errs, errors.New("missing env: "+key))
	}
	return value
}

func (l *Loader) getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (l *Loader) getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		l.errs = append(l.errs, errors.New("invalid duration for "+key+": "+value))
		return defaultValue
	}
	if duration <= 0 {
		l.errs = append(l.errs, errors.New(key+" must be positive"))
		return defaultValue
	}
	return duration
}

func (l *Loader) getEnvFloat64OrDefault(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		l.errs = append(l.errs, errors.New("invalid float for "+key+": "+value))
		return defaultValue
	}
	return floatValue
}
