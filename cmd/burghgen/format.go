package main

import (
	"fmt"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/generation"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/terrain"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

func printReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" {
				fmt.Printf("    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}
}

func printMapSummary(result *generation.Result) {
	counts := map[terrain.Type]int{}
	roadTiles := 0
	for _, t := range result.Tiles {
		counts[t.Type]++
		if t.HasRoad {
			roadTiles++
		}
	}

	fmt.Printf("Map %dx%d (%d tiles)\n", result.Width, result.Height, len(result.Tiles))
	fmt.Printf("  water: %d  sand: %d  grass: %d  dirt: %d  road: %d\n",
		counts[terrain.TypeWater], counts[terrain.TypeSand],
		counts[terrain.TypeGrass], counts[terrain.TypeDirt], roadTiles)
	if result.Network != nil {
		fmt.Printf("  town center: (%d, %d)  nodes: %d  connections: %d\n",
			result.Network.Center.X, result.Network.Center.Y,
			len(result.Network.Nodes), len(result.Network.Edges))
	}
	fmt.Println()
}
