package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MaxwellsDaemon-ca/BurghGen/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "burghgen",
		Short: "Procedural medieval-town map generator",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var opts reqOptions
	var out string

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate a map and write the tile list as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req, err := resolveRequest(opts, args)
			if err != nil {
				return err
			}
			return runGenerate(req, out)
		},
	}

	addRequestFlags(cmd, &opts)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func renderCmd() *cobra.Command {
	var opts reqOptions
	var out string
	var scale int

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Generate a map and save a PNG preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			req, err := resolveRequest(opts, args)
			if err != nil {
				return err
			}
			return runRender(req, out, scale)
		},
	}

	addRequestFlags(cmd, &opts)
	cmd.Flags().StringVarP(&out, "out", "o", "map.png", "output PNG file")
	cmd.Flags().IntVar(&scale, "scale", 4, "pixels per tile")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var allowOrigin string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the map generation HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return server.New(port, allowOrigin).Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "server port")
	cmd.Flags().StringVar(&allowOrigin, "allow-origin", "*", "CORS allow-origin header")
	return cmd
}
