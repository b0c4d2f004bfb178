package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const versionTemplate = `{{printf "navhud version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "navhud",
	Short: "Turn-by-turn navigation HUD for the terminal",
	Long: `navhud renders a turn-by-turn navigation banner in the terminal and
drives it from a simulated route: instruction banner, lane guidance, next
maneuver, status line, an expandable step list and step previews.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable route files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the command line and exits non-zero when a command fails.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
