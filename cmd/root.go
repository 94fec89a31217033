package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cinveen/dictate/internal/audio"
	"github.com/cinveen/dictate/internal/config"
	"github.com/cinveen/dictate/internal/dictation"
	"github.com/cinveen/dictate/internal/transcribe"
	"github.com/cinveen/dictate/internal/ui"
	"github.com/cinveen/dictate/pkg/notify"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "dictate",
	Short:        "Voice-to-text transcription in your terminal",
	Long:         `Dictate records microphone audio, transcribes it with Whisper, and copies the transcript to the clipboard. Press ENTER to start and stop recording.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		godotenv.Load()

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		cfg.ExpandPaths()
		cfg.ApplyDefaults()

		transcriber, err := transcribe.New(cfg.Transcription)
		if err != nil {
			return fmt.Errorf("failed to initialize transcriber: %w", err)
		}

		recorder := audio.NewRecorder(cfg.Audio)
		term := ui.NewTerminal(os.Stdout)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		loop := dictation.New(recorder, transcriber, notify.New(), term, os.Stdin, cfg.Paths.TempDir)
		return loop.Run(ctx)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
