package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/dustin/go-humanize"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/paper-kit/paper/internal/config"
	"github.com/paper-kit/paper/internal/logfeed"
	"github.com/paper-kit/paper/internal/store"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "paper-gallery",
		Short: "Material component catalog",
		Long:  `paper-gallery - An interactive catalog of the paper component kit`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about paper-gallery",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	historyLimit int
	historyCmd   = &cobra.Command{
		Use:   "history",
		Short: "Print recorded notification history",
		Long:  "Print the notifications the snackbar playground posted, newest first",
		Args:  cobra.NoArgs,
		RunE:  history,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName + ".yaml")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath, "Config file path")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 25, "Maximum rows to print")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("paper-gallery - Component kit catalog\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)             //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)              //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)         //nolint:forbidigo
}

func history(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	loader := config.NewLoader(make(chan config.Config, 1))
	if cmd.Flags().Changed("config") {
		loader.SetConfigFile(cfgFile)
	}

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	database, errDB := store.Open(ctx, userConfig.DBPath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	rows, errRows := store.New(database).RecentNotifications(ctx, int64(historyLimit))
	if errRows != nil {
		return errors.Join(errRows, errApp)
	}

	if len(rows) == 0 {
		fmt.Println("No notifications recorded yet") //nolint:forbidigo

		return nil
	}

	for _, row := range rows {
		line := fmt.Sprintf("%4d  %-6s  %-48s  posted %s",
			row.NotificationID, row.Kind, row.Message, humanize.Time(time.Unix(row.PostedOn, 0)))
		if row.DismissedOn > 0 {
			line += fmt.Sprintf(", %s %s", row.DismissReason, humanize.Time(time.Unix(row.DismissedOn, 0)))
		}
		fmt.Println(line) //nolint:forbidigo
	}

	return nil
}

// run is the main entry point of paper-gallery.
func run(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		profile, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(profile); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	loader := config.NewLoader(configUpdates)
	// An explicit --config must exist; the default is resolved through the
	// search path so a missing file falls back to defaults.
	if cmd.Flags().Changed("config") {
		loader.SetConfigFile(cfgFile)
	}

	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}
	loader.Watch()

	// Log to a file since the terminal belongs to the ui while we run. The
	// activity page tails this same file.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting paper-gallery", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", loader.Path()))

	// Setup the sqlite notification history.
	database, errDB := store.Open(ctx, userConfig.DBPath, true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	// Follow our own log file so the activity page can display it.
	feed := logfeed.New()
	if errFeed := feed.Open(config.LogPath()); errFeed != nil {
		slog.Warn("Failed to follow log file", slog.String("error", errFeed.Error()),
			slog.String("path", config.LogPath()))
	}
	defer feed.Close()

	app := NewApp(userConfig, database, feed, configUpdates)

	return app.Start(ctx)
}
