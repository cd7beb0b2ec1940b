package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/grooveapp/groove/client"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the photo list and exit",
	Long: `Fetch the photo list from the server and print it to stdout, one
photo per line, without starting the TUI. Useful for scripting.

Examples:
  # List photos from the default server
  groove list

  # List photos from a custom server
  groove --base-url http://photos.example.com list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList fetches and prints the photo list.
func runList(w io.Writer) error {
	c := client.NewClient(GetBaseURL())

	photos, err := c.ListPhotos()
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		return errors.New("0 photos found")
	}

	fmt.Fprint(w, formatPhotoList(photos, c.URLPrefix()))
	return nil
}

// formatPhotoList renders one line per photo: title, size, full URL.
func formatPhotoList(photos []client.Photo, urlPrefix string) string {
	width := 0
	for _, p := range photos {
		if len(p.Title) > width {
			width = len(p.Title)
		}
	}

	var b strings.Builder
	for _, p := range photos {
		fmt.Fprintf(&b, "%-*s  [%d KB]  %s\n", width, p.Title, p.Size, urlPrefix+p.URL)
	}
	return b.String()
}
