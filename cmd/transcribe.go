package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cinveen/dictate/internal/config"
	"github.com/cinveen/dictate/internal/transcribe"
	"github.com/cinveen/dictate/internal/ui"
)

var transcribeNoCopy bool

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an existing audio file",
	Long:  `Transcribe an existing audio file, print the transcript, and copy it to the clipboard.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audioPath := args[0]

		if _, err := os.Stat(audioPath); os.IsNotExist(err) {
			return fmt.Errorf("audio file not found: %s", audioPath)
		}

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

		term := ui.NewTerminal(os.Stdout)
		term.Info("TRANSCRIBING AUDIO...")

		text, err := transcriber.Transcribe(cmd.Context(), audioPath)
		if err != nil {
			return fmt.Errorf("transcription failed: %w", err)
		}

		term.Success("TRANSCRIPTION COMPLETE")
		term.Transcript(text)

		if !transcribeNoCopy {
			if err := clipboard.WriteAll(text); err != nil {
				term.Info("Manual copy needed (clipboard unavailable)")
			} else {
				term.Success("Copied to clipboard")
			}
		}

		return nil
	},
}

func init() {
	transcribeCmd.Flags().BoolVar(&transcribeNoCopy, "no-copy", false, "Skip copying the transcript to the clipboard")
	rootCmd.AddCommand(transcribeCmd)
}
