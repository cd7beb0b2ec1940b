package cmd

import (
	"github.com/grooveapp/groove/config"
	"github.com/spf13/cobra"
)

var (
	// baseURL is the photo server base URL
	baseURL string

	// cfg holds the .groove.yaml settings, loaded before any command runs
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "groove",
	Short: "Groove - a terminal photo gallery with live filters",
	Long: `Groove is a terminal photo gallery. It fetches a photo list from a
server, renders thumbnails at a chosen size, and pushes the selected
photo through hue, ripple and noise filters to the Pasta renderer.

Examples:
  # Browse the gallery interactively
  groove browse

  # Print the photo list and exit
  groove list

  # Use a custom photo server URL
  groove --base-url http://photos.example.com browse`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(".")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("base-url") && cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://elm-in-action.com", "photo server base URL")
}

// GetBaseURL returns the configured base URL for the photo server
func GetBaseURL() string {
	return baseURL
}
