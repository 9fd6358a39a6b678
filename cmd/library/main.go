package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/sociopath-little-dragon/library-bd/library/config"
)

type rootFlags struct {
	logLevel     string
	writeTimeout time.Duration
	mockDB       bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, reading the environment only")
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:          "library",
		Short:        "Library loans, fines and catalog service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "overrides LOG_LEVEL")
	root.PersistentFlags().DurationVar(&flags.writeTimeout, "write-timeout", time.Minute, "http write timeout")
	root.PersistentFlags().BoolVar(&flags.mockDB, "mock-db", false, "use in-memory storage instead of postgres")

	loadConfig := func(cmd *cobra.Command) (config.Config, error) {
		opts := []config.Option{config.WithWriteTimeout(flags.writeTimeout)}
		if flags.logLevel != "" {
			level, err := zapcore.ParseLevel(flags.logLevel)
			if err != nil {
				return config.Config{}, err
			}
			opts = append(opts, config.WithLogLevel(level))
		}
		if cmd.Flags().Changed("mock-db") {
			opts = append(opts, config.WithMockDB(flags.mockDB))
		}
		return config.NewConfig(opts...), nil
	}

	root.AddCommand(
		newServeCmd(loadConfig),
		newMigrateCmd(loadConfig),
		newLibrarianCmd(loadConfig),
		newFinesCmd(loadConfig),
	)
	return root
}
