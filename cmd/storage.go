package cmd

import (
	"fmt"

	"github.com/matheuskafuri/aidash/internal/config"
	"github.com/matheuskafuri/aidash/internal/saved"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Inspect or clear saved articles",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print saved article ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ids := saved.Load(db).IDs()
		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No saved articles.")
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every saved article",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		store := saved.Load(db)
		n := store.Size()
		store.Clear()
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d saved article(s).\n", n)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show storage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.StoragePath()
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		keys, size, err := db.Stats(dbPath)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Storage: %s\n", dbPath)
		fmt.Fprintf(out, "Saved articles: %d\n", saved.Load(db).Size())
		fmt.Fprintf(out, "Keys: %d\n", keys)
		fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
		if t, err := db.UpdatedAt(saved.StorageKey); err == nil {
			fmt.Fprintf(out, "Last saved: %s\n", t.Local().Format("Jan 2, 03:04 PM"))
		}
		return nil
	},
}

func init() {
	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedClearCmd)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
