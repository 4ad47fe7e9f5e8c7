package main

import (
	"context"
	"database/sql"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/paper-kit/paper/internal/config"
	"github.com/paper-kit/paper/internal/gallery"
	"github.com/paper-kit/paper/internal/logfeed"
	"github.com/paper-kit/paper/internal/store"
)

// App is the main application container.
type App struct {
	ui            *gallery.UI
	config        config.Config
	queries       *store.Queries
	feed          *logfeed.Feed
	configUpdates chan config.Config
	parentCtx     chan any
	// playground tokens to database row ids
	rows map[int64]int64
}

// NewApp returns a new application instance. To actually start the app you
// must call Start().
func NewApp(conf config.Config, database *sql.DB, feed *logfeed.Feed, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		queries:       store.New(database),
		feed:          feed,
		configUpdates: configUpdates,
		parentCtx:     make(chan any, 16),
		rows:          map[int64]int64{},
	}
}

// Start brings up the background loops and runs the UI until it exits.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.ui = gallery.New(ctx, app.config, BuildVersion, BuildDate, BuildCommit, app.parentCtx)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})
	group.Go(func() error {
		app.forwardConfig(groupCtx)

		return nil
	})
	group.Go(func() error {
		app.forwardEntries(groupCtx)

		return nil
	})
	group.Go(func() error {
		app.recordNotices(groupCtx)

		return nil
	})

	return group.Wait()
}

// forwardConfig rebroadcasts config file changes into the running UI.
func (app *App) forwardConfig(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

// forwardEntries streams tailed log lines into the activity page.
func (app *App) forwardEntries(ctx context.Context) {
	for {
		select {
		case entry := <-app.feed.Entries():
			app.ui.Send(entry)
		case <-ctx.Done():
			return
		}
	}
}

// recordNotices persists the notification records the playground reports
// over the parent channel.
func (app *App) recordNotices(ctx context.Context) {
	for {
		select {
		case record := <-app.parentCtx:
			app.persist(ctx, record)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) persist(ctx context.Context, record any) {
	if !app.config.HistoryEnabled {
		return
	}

	switch rec := record.(type) {
	case gallery.NoticePosted:
		rowID, err := app.queries.InsertNotification(ctx, store.InsertNotificationParams{
			Kind:     rec.Kind,
			Message:  rec.Message,
			Action:   rec.Action,
			PostedOn: rec.PostedOn.Unix(),
		})
		if err != nil {
			slog.Error("Failed to insert notification", slog.String("error", err.Error()))

			return
		}
		app.rows[rec.Token] = rowID

		if errPrune := app.queries.PruneNotifications(ctx, int64(app.config.HistoryLimit)); errPrune != nil {
			slog.Error("Failed to prune notifications", slog.String("error", errPrune.Error()))
		}
	case gallery.NoticeDismissed:
		rowID, found := app.rows[rec.Token]
		if !found {
			return
		}
		delete(app.rows, rec.Token)

		if err := app.queries.MarkDismissed(ctx, store.MarkDismissedParams{
			DismissReason:  rec.Reason,
			DismissedOn:    rec.DismissedOn.Unix(),
			NotificationID: rowID,
		}); err != nil {
			slog.Error("Failed to mark dismissal", slog.String("error", err.Error()))
		}
	}
}
