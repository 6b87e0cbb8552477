package config

import (
	"fmt"
	"time"
)

// RecruitmentConfig bounds how often a recruitment transaction is re-run after
// a transient database failure (lock timeout, serialization failure).
type RecruitmentConfig struct {
	TxMaxAttempts int
	TxRetryDelay  time.Duration
}

// LoadRecruitmentConfigFromEnv loads recruitment configuration from environment variables.
func LoadRecruitmentConfigFromEnv() RecruitmentConfig {
	return RecruitmentConfig{
		TxMaxAttempts: GetEnvInt("RECRUITMENT_TX_MAX_ATTEMPTS", 3),
		TxRetryDelay:  GetEnvDuration("RECRUITMENT_TX_RETRY_DELAY", 20*time.Millisecond),
	}
}

// DefaultRecruitmentConfig returns the defaults used when no environment is set.
func DefaultRecruitmentConfig() RecruitmentConfig {
	return RecruitmentConfig{
		TxMaxAttempts: 3,
		TxRetryDelay:  20 * time.Millisecond,
	}
}

// Validate validates recruitment configuration.
func (c RecruitmentConfig) Validate() error {
	if c.TxMaxAttempts < 1 || c.TxMaxAttempts > 10 {
		return fmt.Errorf("RECRUITMENT_TX_MAX_ATTEMPTS must be between 1 and 10")
	}
	if c.TxRetryDelay < 0 {
		return fmt.Errorf("RECRUITMENT_TX_RETRY_DELAY must be non-negative")
	}
	return nil
}
