package cmd

import (
	"log"

	"github.com/gradsift/gradsift/internal/jobfeed"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "gradsift"
)

type Config struct {
	Feed   *FeedConfig           `mapstructure:"feed"`
	Search *jobfeed.SearchParams `mapstructure:"search"`
	// Locations is the allow list for the location filter. Empty means the
	// built-in UK defaults.
	Locations             []string `mapstructure:"locations"`
	DisableLocationFilter bool     `mapstructure:"disable-location-filter"`
	ExcludeDepartments    []string `mapstructure:"exclude-departments"`
	ExcludeFile           string   `mapstructure:"exclude-file"`
	Output                string   `mapstructure:"output"`
	HighOnly              bool     `mapstructure:"high-only"`
}

type FeedConfig struct {
	URL       string `mapstructure:"url"`
	TokenFile string `mapstructure:"token-file"`
	UserAgent string `mapstructure:"user-agent"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "gradsift is a simple cli for finding early-career postings in a job-board feed",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("token-file", "GRADSIFT_TOKEN_FILE"); err != nil {
		log.Fatalf("binding GRADSIFT_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is gradsift.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
