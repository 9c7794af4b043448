package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables(viper.New())

	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, env.LogLevel)
	assert.Equal(t, 4, env.Workers)
	assert.Equal(t, 1000, env.QueueSize)
	assert.Equal(t, SequenceScopeGlobal, env.SequenceScope)
}

func TestProcessEnvironmentVariables_FromEnv(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "debug")
	t.Setenv("LEDGER_WORKERS", "8")
	t.Setenv("LEDGER_QUEUE_SIZE", "16")
	t.Setenv("LEDGER_SEQUENCE_SCOPE", "Account")

	env, err := ProcessEnvironmentVariables(viper.New())

	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, env.LogLevel)
	assert.Equal(t, 8, env.Workers)
	assert.Equal(t, 16, env.QueueSize)
	assert.Equal(t, SequenceScopeAccount, env.SequenceScope)
}

func TestProcessEnvironmentVariables_ExplicitValueWins(t *testing.T) {
	v := viper.New()
	v.Set("workers", 2)

	env, err := ProcessEnvironmentVariables(v)

	require.NoError(t, err)
	assert.Equal(t, 2, env.Workers)
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	cases := map[string]string{
		"LEDGER_LOG_LEVEL":      "loud",
		"LEDGER_WORKERS":        "0",
		"LEDGER_QUEUE_SIZE":     "-1",
		"LEDGER_SEQUENCE_SCOPE": "branch",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			env, err := ProcessEnvironmentVariables(viper.New())

			assert.Error(t, err)
			assert.Nil(t, env)
		})
	}
}
