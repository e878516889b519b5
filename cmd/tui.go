package cmd

import (
	"time"

	"github.com/matheuskafuri/aidash/internal/dashboard"
	"github.com/matheuskafuri/aidash/internal/feed"
	"github.com/matheuskafuri/aidash/internal/kv"
	"github.com/matheuskafuri/aidash/internal/logging"
	"github.com/matheuskafuri/aidash/internal/repository"
	"github.com/matheuskafuri/aidash/internal/saved"
	"github.com/matheuskafuri/aidash/internal/tui"
	"github.com/matheuskafuri/aidash/internal/watch"
	"github.com/spf13/cobra"
)

const watchDebounce = 250 * time.Millisecond

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logging.Close()

	var storage saved.Storage = &kv.Memory{}
	if !flagNoPersist {
		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()
		storage = db
	}

	filter, err := repository.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		return err
	}

	dash := dashboard.New(dashboard.Options{
		Storage:       storage,
		FeaturedLimit: cfg.GetFeaturedLimit(),
		Autoplay:      cfg.AutoplayDuration(),
		Filter:        filter,
		Names:         cfg.SourceNames(),
	})

	src := feed.New(cfg.Source, cfg.RequestTimeoutDuration())

	opts := tui.RunOpts{
		Dashboard: dash,
		Source:    src,
		Timeout:   cfg.RequestTimeoutDuration(),
	}

	if cfg.Watch && !cfg.IsRemote() {
		w, err := watch.New(src.Location(), watchDebounce)
		if err != nil {
			// Non-fatal: r still refreshes by hand.
			logging.Warn("feed watcher disabled", "path", src.Location(), "err", err)
		} else {
			defer w.Close()
			opts.Changes = w.Changes()
		}
	}

	return tui.Run(opts)
}
