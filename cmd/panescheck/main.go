// Command panescheck validates a layout config and prints the sizes the
// panels start with.
//
// Usage:
//
//	panescheck [config.toml ...]
//
// Without arguments the standard config locations are read.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/split"
)

func main() {
	log.SetFlags(0)

	var (
		cfg *config.Config
		err error
	)
	if len(os.Args) > 1 {
		cfg, err = config.LoadFrom(os.Args[1:]...)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sc, err := cfg.Split()
	if err != nil {
		log.Fatalf("Invalid layout: %v", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		log.Fatalf("Invalid layout: %v", err)
	}
	sizes, err := split.Normalize(sc)
	if err != nil {
		log.Fatalf("Invalid layout: %v", err)
	}

	log.Printf("direction: %s, on limit: %s", sc.Direction, policy)
	for i, p := range cfg.GetPanels() {
		c := sc.Panels[i]
		log.Printf("  %-16s %7s  [%s, %s]", p.Title, percent(sizes[i]), percent(c.Min()), percent(c.Max()))
	}

	boundaries := make([]string, 0, len(sizes)-1)
	for h := range len(sizes) - 1 {
		boundaries = append(boundaries, percent(split.Boundary(sizes, h)))
	}
	if len(boundaries) > 0 {
		log.Printf("handles at: %s", strings.Join(boundaries, ", "))
	}
}

// percent formats v with at most two decimals, dropping trailing zeros.
func percent(v float64) string {
	return humanize.FtoaWithDigits(v, 2) + "%"
}
