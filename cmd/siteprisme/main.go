// Command siteprisme serves the SitePrisme agency site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siteprisme.fr/internal/config"
	"siteprisme.fr/internal/log"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Global flags
	configPath string
	envFile    string

	// cfg is loaded once before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "siteprisme",
	Short: "SitePrisme site server",
	Long: `siteprisme serves the SitePrisme agency site: the single page, the
portfolio API and the contact endpoints that relay messages to Formspree
and Resend.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Configure(log.Config{
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
			Service: "siteprisme",
			Version: version,
		})
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("SITEPRISME_CONFIG"), "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	rootCmd.AddCommand(serveCmd, checkCmd, exportCmd, inboxCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
