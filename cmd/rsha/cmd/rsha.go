package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"massnet.org/rsha/config"
	"massnet.org/rsha/errors"
	"massnet.org/rsha/logging"
	"massnet.org/rsha/version"
)

// app carries what every subcommand needs once the root has initialised.
type app struct {
	v         *viper.Viper
	cfgFile   string
	cfg       *config.Config
	usingFile bool
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.VPrint(logging.ERROR, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
		os.Exit(exitCode(err))
	}
}

// exitCode maps a digest mismatch to 1 and every other failure to 2.
func exitCode(err error) int {
	if errors.Code(err) == errors.ErrDigestMismatch {
		return 1
	}
	return 2
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         `SHA-256 digests of strings and files`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	def := config.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.rsha.json)")
	flags.String("log_dir", def.Log.Dir, "directory for log files")
	flags.String("log_level", def.Log.Level, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	flags.Int("workers", def.Pool.Workers, "number of files hashed in parallel")
	flags.String("format", def.Output.Format, "digest rendering (hex, arr)")

	a.v.BindPFlag(config.KeyLogDir, flags.Lookup("log_dir"))
	a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log_level"))
	a.v.BindPFlag(config.KeyPoolWorkers, flags.Lookup("workers"))
	a.v.BindPFlag(config.KeyOutputFormat, flags.Lookup("format"))

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newHashCmd(a))
	root.AddCommand(newSumCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// init reads the config and starts the loggers.
func (a *app) init() error {
	cfg, usingFile, err := config.LoadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg, a.usingFile = cfg, usingFile

	logging.Init(cfg.Log.Dir, cfg.Log.Filename, cfg.Log.Level, cfg.Log.Age, cfg.Log.DisableCPrint)
	logging.VPrint(logging.INFO, "using config file", logging.LogFormat{
		"file":    usingFile,
		"path":    a.v.ConfigFileUsed(),
		"workers": cfg.Pool.Workers,
		"format":  cfg.Output.Format,
		"version": version.GetVersion(),
	})
	return nil
}
