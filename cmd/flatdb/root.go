package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flatdb/internal/config"
	"flatdb/internal/engine"
	"flatdb/internal/logger"
	"flatdb/internal/shell"
	"flatdb/internal/storage/filestore"
)

// app holds what every subcommand needs once flags have been parsed.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg *config.Config
	log *slog.Logger
	eng *engine.DBEngine
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "flatdb",
		Short:         "A small SQL database stored as one flat file per table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flatdb (%s, %s). Type .help for help.\n", a.cfg.DataDir, a.cfg.Format)
			sh := shell.New(a.eng, out, shell.WithLogger(a.log))
			return sh.RunTerminal(a.cfg.HistoryFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("data-dir", "", "directory holding the table files")
	flags.String("format", "", "table file format: csv or json")
	flags.String("log-level", "", "log level: DEBUG, INFO, WARN or ERROR")

	bindings := map[string]string{
		"data_dir":  "data-dir",
		"format":    "format",
		"log.level": "log-level",
	}
	for key, flag := range bindings {
		// BindPFlag only fails on a nil flag.
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newExecCmd(a), newTablesCmd(a))
	return root
}

// open loads configuration and starts an engine on the configured store.
func (a *app) open(logOut io.Writer) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logOut,
	})

	store, err := filestore.New(cfg.DataDir, cfg.StorageFormat(), filestore.WithLogger(a.log))
	if err != nil {
		return err
	}

	a.eng = engine.New(store, engine.WithLogger(a.log))
	if err := a.eng.Start(); err != nil {
		return err
	}
	a.log.Debug("database opened", "data_dir", cfg.DataDir, "format", cfg.Format)
	return nil
}
