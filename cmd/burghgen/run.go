package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/generation"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/render"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/spec"
)

// reqOptions are the request flags shared by generate and render.
type reqOptions struct {
	mapType string
	seed    int64
	width   int
	height  int
}

func addRequestFlags(cmd *cobra.Command, opts *reqOptions) {
	defaults := spec.Default()
	cmd.Flags().StringVar(&opts.mapType, "type", defaults.Type, "map type: river, lake, or seaside")
	cmd.Flags().Int64Var(&opts.seed, "seed", defaults.Seed, "generation seed")
	cmd.Flags().IntVar(&opts.width, "width", defaults.Width, "map width in tiles")
	cmd.Flags().IntVar(&opts.height, "height", defaults.Height, "map height in tiles")
}

// resolveRequest builds the map request from a project directory's
// map.yaml when given, otherwise from flags.
func resolveRequest(opts reqOptions, args []string) (spec.MapRequest, error) {
	if len(args) == 1 {
		req, err := spec.LoadProject(args[0])
		if err != nil {
			return spec.MapRequest{}, fmt.Errorf("loading project: %w", err)
		}
		return *req, nil
	}

	return spec.MapRequest{
		Type:   opts.mapType,
		Seed:   opts.seed,
		Width:  opts.width,
		Height: opts.height,
	}, nil
}

func runGenerate(req spec.MapRequest, out string) error {
	result, err := generation.Generate(req)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		// Summaries only when they will not interleave with the JSON.
		printReport(result.Report)
		printMapSummary(result)

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Tiles)
}

func runRender(req spec.MapRequest, out string, scale int) error {
	result, err := generation.Generate(req)
	if err != nil {
		return err
	}

	printReport(result.Report)
	printMapSummary(result)

	if err := render.SavePNG(out, result.Tiles, result.Width, result.Height, render.Options{Scale: scale}); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
