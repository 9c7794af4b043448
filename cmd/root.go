package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/carson-networks/bank-ledger/api"
	"github.com/carson-networks/bank-ledger/internal/config"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/response"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/operator"
	"github.com/carson-networks/bank-ledger/internal/service"
	"github.com/carson-networks/bank-ledger/internal/storage"
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(response.Capitalize(err.Error()))
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the bank-ledger command. The console reads in and writes
// to out; JSON logs go to logOut.
func NewRootCmd(in io.Reader, out, logOut io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "bank-ledger",
		Short:         "bank-ledger is an interactive bank account ledger",
		Long:          `bank-ledger records deposits and withdrawals, keeps effective-dated interest rules and prints monthly statements with interest credited.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, in, out, logOut)
		},
	}

	flags := rootCmd.Flags()
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Int("workers", 4, "number of account shards processing mutations")
	flags.Int("queue-size", 1000, "pending actions per shard")
	flags.String("sequence-scope", config.SequenceScopeGlobal, "scope of per-date transaction ids (global or account)")

	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("workers", flags.Lookup("workers"))
	_ = v.BindPFlag("queue_size", flags.Lookup("queue-size"))
	_ = v.BindPFlag("sequence_scope", flags.Lookup("sequence-scope"))

	return rootCmd
}

func run(ctx context.Context, v *viper.Viper, in io.Reader, out, logOut io.Writer) error {
	envConfig, err := config.ProcessEnvironmentVariables(v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.SetupLogging(logOut, envConfig.LogLevel)
	logger.WithField("sequenceScope", envConfig.SequenceScope).Info("bank-ledger starting")

	store := storage.NewStorage(envConfig)

	op := operator.NewOperatorDelegator(store, envConfig.Workers, envConfig.QueueSize)
	op.Start()
	defer op.Stop()

	console := api.Console{
		Logger:  logger,
		Service: service.NewService(store, op, logger),
		In:      in,
		Out:     out,
	}

	return console.Serve(ctx)
}
