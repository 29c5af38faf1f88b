package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"medtrack/internal/errors"
)

// Supported subcommands:
// - route:  Fetch a driving route between two points
// - snap:   Fetch a route and reconcile a rider fix against it
// - static: Print the static map fallback for a destination

func main() {
	routeCmd := flag.NewFlagSet("route", flag.ExitOnError)
	snapCmd := flag.NewFlagSet("snap", flag.ExitOnError)
	staticCmd := flag.NewFlagSet("static", flag.ExitOnError)

	flags := probeFlags{
		Route: routeFlags{
			cmd:       routeCmd,
			from:      routeCmd.String("from", "", "Origin as lat,lng"),
			to:        routeCmd.String("to", "", "Destination as lat,lng"),
			provider:  routeCmd.String("provider", "osrm", "Routing provider (osrm, google)"),
			osrmURL:   routeCmd.String("osrm-url", "", "OSRM base URL"),
			googleKey: routeCmd.String("google-key", os.Getenv("GOOGLE_MAPS_API_KEY"), "Google Directions API key"),
			timeout:   routeCmd.Duration("timeout", 0, "Request timeout (default 6s)"),
			points:    routeCmd.Bool("points", false, "Print the simplified polyline"),
		},
		Snap: snapFlags{
			cmd:   snapCmd,
			rider: snapCmd.String("rider", "", "Rider fix as lat,lng"),
			to:    snapCmd.String("to", "", "Destination as lat,lng"),
			max:   snapCmd.Float64("max", 0, "Largest accepted snap distance in meters (default 40)"),
		},
		Static: staticFlags{
			cmd:  staticCmd,
			dest: staticCmd.String("dest", "", "Destination as lat,lng"),
			zoom: staticCmd.Int("zoom", 0, "Static map zoom (default 15)"),
		},
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type probeFlags struct {
	Route  routeFlags
	Snap   snapFlags
	Static staticFlags
}

func runSubcommand(ctx context.Context, flags *probeFlags) error {
	switch os.Args[1] {
	case "route":
		return handleRoute(ctx, flags)
	case "snap":
		return handleSnap(ctx, flags)
	case "static":
		return handleStatic(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: routeprobe <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  route     Fetch a driving route between two points")
	fmt.Println("  snap      Snap a rider fix onto the route to a destination")
	fmt.Println("  static    Print the static map fallback URLs for a destination")
	fmt.Println("")
	fmt.Println("Use 'routeprobe <command> -h' for more information about a command.")
}
