package cmd

import (
	"context"
	"fmt"
	"os"

	log "github.com/harlequix/hamfec/log"
	"github.com/harlequix/hamfec/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hamfec",
	Short: "Hamming(7,4) forward error correction demonstrator",
	Long: `hamfec encodes four data bits into a seven bit Hamming(7,4) codeword,
flips one bit to simulate a noisy channel and corrects it again using the
syndrome computed at the receiver.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flags.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.String("logfile", "", "mirror logs as JSON to <logfile>.trace and <logfile>.warn")

	bindFlag("Seed", flags.Lookup("seed"))
	bindFlag("LogLevel", flags.Lookup("log-level"))
	bindFlag("Logfile", flags.Lookup("logfile"))
}

// bindFlag ties a config key to a flag. A failure means the flag name is
// wrong, so it panics.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Errorf("binding flag for %s: %w", key, err))
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	viper.SetEnvPrefix("HAMFEC")
	viper.AutomaticEnv()

	config, err := simulation.LoadConfig()
	if err != nil {
		return err
	}
	if err := log.SetLevel(config.LogLevel); err != nil {
		return err
	}
	if config.Logfile != "" {
		log.AddTracer(config.Logfile)
	}
	return nil
}
