// Command brew lists the potions a set of ingredients can make, or the best
// potions carrying a set of effects, straight from a catalog file.
//
//	brew -catalog configs/alchemy/catalog.yaml Wheat "Blue Mountain Flower" "Giant's Toe"
//	brew -effects -limit 5 Waterbreathing
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/osse101/Alchemy_Go/internal/brewing"
	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/config"
	"github.com/osse101/Alchemy_Go/internal/domain"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brew", flag.ContinueOnError)
	fs.SetOutput(stderr)

	catalogPath := fs.String("catalog", config.DefaultCatalogPath, "catalog file (.json, .yaml or .yml)")
	byEffects := fs.Bool("effects", false, "treat arguments as target effects instead of ingredients")
	limit := fs.Int("limit", 10, "maximum potions to print (0 for all)")
	sortBy := fs.String("sort", string(brewing.SortByValue), "sort order: value or name")
	maxCandidates := fs.Int("max-candidates", 0, "cap on ingredients combined in an effect search (0 for no cap)")
	verbose := fs.Bool("v", false, "print effect descriptions")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: brew [flags] <name> [name...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	if *limit < 0 {
		fmt.Fprintln(stderr, "limit must not be negative")
		return exitUsage
	}

	sortKey, err := brewing.ParseSortKey(*sortBy)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cat, err := catalog.LoadFile(*catalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load catalog: %v\n", err)
		return exitError
	}

	opts := brewing.Options{Limit: *limit, MaxCandidates: *maxCandidates, SortBy: sortKey}

	var potions []domain.Potion
	if *byEffects {
		potions, err = brewing.BrewByTargetEffects(cat, fs.Args(), opts)
	} else {
		potions, err = brewing.Brew(cat, fs.Args(), opts)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if isInputError(err) {
			return exitUsage
		}
		return exitError
	}

	if len(potions) == 0 {
		fmt.Fprintln(stdout, "No potions can be made.")
		return exitOK
	}

	if err := printPotions(stdout, potions, *verbose); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrUnknownIngredient) ||
		errors.Is(err, domain.ErrEffectNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrTooManyIngredients)
}

func printPotions(w io.Writer, potions []domain.Potion, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tPOTION\tINGREDIENTS")
	for i := range potions {
		p := &potions[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Value, p.Name(), strings.Join(p.Ingredients, ", "))
		if verbose {
			for _, effect := range p.Effects {
				fmt.Fprintf(tw, "\t  %s\t%s\n", effect.Name, effect.Description)
			}
		}
	}
	return tw.Flush()
}
