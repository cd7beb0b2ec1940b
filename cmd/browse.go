package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grooveapp/groove/activity"
	"github.com/grooveapp/groove/client"
	"github.com/grooveapp/groove/gallery"
	"github.com/grooveapp/groove/pick"
	"github.com/grooveapp/groove/render"
	"github.com/spf13/cobra"
)

// defaultPastaVersion is announced on startup when .groove.yaml does
// not pin one.
const defaultPastaVersion = 1.1

var noActivity bool

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the photo gallery in interactive TUI mode",
	Long: `Browse the photo gallery in interactive Terminal User Interface mode.

Thumbnails, filter sliders and the size chooser are driven from the
keyboard. The selected photo and current filter settings are pushed to
the Pasta renderer on every change.

Examples:
  # Browse with the default server
  groove browse

  # Browse with a custom server URL
  groove --base-url http://photos.example.com browse

  # Browse without the activity feed
  groove browse --no-activity`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	browseCmd.Flags().BoolVar(&noActivity, "no-activity", false, "disable the live activity feed")
	rootCmd.AddCommand(browseCmd)
}

// runBrowse wires the boundaries together and runs the TUI.
func runBrowse() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := client.NewClient(GetBaseURL())
	bridge := render.NewBridge()

	var notifications <-chan activity.Notification
	if !noActivity {
		subscriber := activity.NewSubscriber(GetBaseURL())
		notifications = subscriber.Start(ctx)
		defer subscriber.Stop()
	}

	if cfg.Renderer != "" {
		proc := render.NewProcess(render.Config{
			Command: cfg.Renderer,
			Args:    cfg.RendererArgs,
		})
		runner := render.NewRunner(proc, bridge)
		if err := runner.Run(ctx); err != nil {
			return fmt.Errorf("error starting renderer: %w", err)
		}
		defer runner.Cancel()
	}

	pastaVersion := cfg.PastaVersion
	if pastaVersion == 0 {
		pastaVersion = defaultPastaVersion
	}

	model := gallery.NewModel(c, bridge, notifications, pick.NewPicker(), pastaVersion)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
