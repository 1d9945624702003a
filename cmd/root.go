package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/config"
	"github.com/he2plus/he2plus-lib-sub001/internal/definition"
	"github.com/he2plus/he2plus-lib-sub001/internal/logging"
	"github.com/he2plus/he2plus-lib-sub001/internal/profiles"
	"github.com/he2plus/he2plus-lib-sub001/internal/resolver"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   "he2plus",
	Short: "Plan developer environment installs from a catalog of profiles",
	Long: `he2plus knows a catalog of development environment profiles (languages,
web, web3, data, mobile, devops) and turns a selection of them into an
ordered installation plan with resource totals.

Custom profiles are read from YAML or TOML files in the configured
profile directories.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(verbosity, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: he2plus.yml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.AppName)
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(config.Dir())
	}

	viper.SetEnvPrefix(strings.ToUpper(config.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

// app is what every command works against: the loaded config, the
// catalog built from builtin and file profiles, and a resolver over it.
type app struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(logging.GetLogger("cmd"), "load catalog")
	c := catalog.New(logging.GetLogger("catalog"),
		profiles.Source(),
		definition.NewSource(cfg.ProfileDirs...),
	)
	c.Load()
	done()

	r := resolver.New(c)
	if len(cfg.Priority) > 0 {
		r.Priority = cfg.Priority
	}

	return &app{cfg: cfg, catalog: c, resolver: r}, nil
}

// selection returns args, or the configured profiles when no args are given.
func (a *app) selection(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return a.cfg.Profiles
}
