package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"navhud/internal/navigation"
	"navhud/internal/tui/design"
	"navhud/internal/tui/utils"
)

var routeUnits string

func newRouteCmd() *cobra.Command {
	routeCmd := &cobra.Command{
		Use:   "route",
		Short: "Work with route definition files",
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate a route file and list its legs and steps",
		Long: `Loads a route definition, validates it and prints every leg and step
with its distance. Use "demo" as the file name to inspect the built-in route.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := loadInspectedRoute(args[0])
			if err != nil {
				return err
			}
			units := navigation.UnitsMetric
			if routeUnits != "" {
				units = navigation.Units(routeUnits)
			}
			printRoute(cmd.OutOrStdout(), route, navigation.NewDistanceFormatter(units, "en-US"))
			return nil
		},
	}
	inspectCmd.Flags().StringVar(&routeUnits, "units", "", "Distance units: metric or imperial")

	routeCmd.AddCommand(inspectCmd)
	return routeCmd
}

func loadInspectedRoute(name string) (*navigation.Route, error) {
	if name == "demo" {
		return navigation.DemoRoute(), nil
	}
	return navigation.LoadRoute(name)
}

func printRoute(w io.Writer, route *navigation.Route, formatter navigation.DistanceFormatter) {
	fmt.Fprintln(w, design.TitleStyle.UnsetMarginBottom().Render(fmt.Sprintf("%s (%s)", route.Name, route.ID)))
	fmt.Fprintf(w, "%s in %d legs\n", formatter.Format(route.Distance()), len(route.Legs))

	width := 0
	for _, step := range route.AllSteps() {
		if n := runewidth.StringWidth(step.Instruction); n > width {
			width = n
		}
	}

	n := 0
	for li, leg := range route.Legs {
		fmt.Fprintf(w, "\nLeg %d: %s\n", li+1, leg.Name)
		for _, step := range leg.Steps {
			n++
			fmt.Fprintf(w, "  %2d. %s  %s\n", n, utils.PadRight(step.Instruction, width), formatter.Format(step.Distance))
		}
	}
}
