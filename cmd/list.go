package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matheuskafuri/aidash/internal/feed"
	"github.com/matheuskafuri/aidash/internal/render"
	"github.com/matheuskafuri/aidash/internal/repository"
	"github.com/matheuskafuri/aidash/internal/saved"
	"github.com/spf13/cobra"
)

var flagListSaved bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the article grid once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		store := saved.Load(db)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeoutDuration())
		defer cancel()

		repo := repository.New()
		res, err := repo.Load(ctx, feed.New(cfg.Source, cfg.RequestTimeoutDuration()))
		if err != nil {
			return err
		}

		filter, err := listFilter(cfg.DefaultFilter, flagListSaved)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if line := render.LastUpdated(res.LastUpdated); line != "" {
			fmt.Fprintln(out, line)
		}
		names := cfg.SourceNames()
		writeBadges(out, render.Badges(res.Sources, names))
		writeGrid(out, render.Render(repo.All(), filter, store, names))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListSaved, "saved", false, "only show saved articles")
}

// listFilter picks the configured default filter unless --saved forces the
// saved view.
func listFilter(defaultFilter string, savedOnly bool) (repository.Filter, error) {
	if savedOnly {
		return repository.FilterSaved, nil
	}
	return repository.ParseFilter(defaultFilter)
}

func writeBadges(w io.Writer, badges []render.Badge) {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		s := fmt.Sprintf("%s [%s]", b.Name, b.State)
		if b.CountText != "" {
			s += " " + b.CountText
		}
		parts = append(parts, s)
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

func writeGrid(w io.Writer, grid render.Grid) {
	fmt.Fprintf(w, "All (%d)  Saved (%d)\n\n", grid.Counts.All, grid.Counts.Saved)
	if grid.Empty {
		fmt.Fprintln(w, grid.EmptyMessage)
		return
	}
	for _, c := range grid.Cards {
		fmt.Fprintf(w, "%s %s\n", c.SaveIcon(), c.Title)
		meta := "  " + c.SourceName
		if len(c.Tags) > 0 {
			meta += " · " + strings.Join(c.Tags, ", ")
		}
		fmt.Fprintln(w, meta)
		fmt.Fprintf(w, "  %s\n", c.URL)
	}
}
