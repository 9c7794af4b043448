package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SequenceScopeGlobal  = "global"
	SequenceScopeAccount = "account"
)

type Config struct {
	LogLevel      logrus.Level
	Workers       int
	QueueSize     int
	SequenceScope string
}

// SetDefaults registers the defaults and the LEDGER_ environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", 4)
	v.SetDefault("queue_size", 1000)
	v.SetDefault("sequence_scope", SequenceScopeGlobal)

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func ProcessEnvironmentVariables(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	env := Config{
		LogLevel:      level,
		Workers:       v.GetInt("workers"),
		QueueSize:     v.GetInt("queue_size"),
		SequenceScope: strings.ToLower(v.GetString("sequence_scope")),
	}

	if env.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", env.Workers)
	}

	if env.QueueSize < 0 {
		return nil, fmt.Errorf("queue size must not be negative, got %d", env.QueueSize)
	}

	if env.SequenceScope != SequenceScopeGlobal && env.SequenceScope != SequenceScopeAccount {
		return nil, fmt.Errorf("sequence scope must be %q or %q, got %q",
			SequenceScopeGlobal, SequenceScopeAccount, env.SequenceScope)
	}

	return &env, nil
}
