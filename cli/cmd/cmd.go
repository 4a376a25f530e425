package cmd

import (
	"context"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unotto/genchi"
)

var (
	rootCmd = &cobra.Command{
		Use:     "genchi",
		Short:   "Travel currency converter",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type Config struct {
	Ctx      context.Context
	Resolver genchi.RateResolver
	History  genchi.HistoryStore
	Logger   *logrus.Logger
}

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	cobra.OnInitialize(func() {
		if debug && config.Logger != nil {
			config.Logger.SetLevel(logrus.DebugLevel)
		}
	})

	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("GENCHI")
	viper.AutomaticEnv()

	rootCmd.AddCommand(rate(config), chart(config), historyCmd(config))

	return rootCmd.Execute()
}
