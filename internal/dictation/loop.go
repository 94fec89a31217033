package dictation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/cinveen/dictate/internal/audio"
	"github.com/cinveen/dictate/internal/transcribe"
	"github.com/cinveen/dictate/internal/ui"
)

// Recorder captures audio between Start and Stop and writes it out as WAV.
// *audio.Recorder satisfies this; tests substitute fakes.
type Recorder interface {
	Start() error
	Stop() error
	WriteWAV(path string) error
}

// Notifier sends desktop notifications.
type Notifier interface {
	Info(title, message string) error
	Error(title, message string) error
}

// Loop runs the interactive dictation cycle: idle until Enter, record until
// Enter, then transcribe, display, and copy to the clipboard.
type Loop struct {
	recorder    Recorder
	transcriber transcribe.Transcriber
	notifier    Notifier
	term        *ui.Terminal
	in          *bufio.Reader
	tempDir     string

	// copyText is clipboard.WriteAll, swappable in tests.
	copyText func(string) error
}

// New creates a dictation loop reading keypresses from in.
func New(rec Recorder, tr transcribe.Transcriber, n Notifier, term *ui.Terminal, in io.Reader, tempDir string) *Loop {
	return &Loop{
		recorder:    rec,
		transcriber: tr,
		notifier:    n,
		term:        term,
		in:          bufio.NewReader(in),
		tempDir:     tempDir,
		copyText:    clipboard.WriteAll,
	}
}

// Run drives the dictation loop until the context is canceled or input ends.
// A failure inside one cycle aborts that attempt and returns to idle; only
// setup errors terminate the loop.
func (l *Loop) Run(ctx context.Context) error {
	if err := os.MkdirAll(l.tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	l.term.Clear()
	l.term.Banner()
	l.term.Println()
	l.term.Dim("Press CTRL+C to exit")
	l.term.Println()

	for {
		l.term.Prompt("Press ENTER to start recording")
		if err := l.waitEnter(ctx); err != nil {
			return l.shutdown()
		}

		if err := l.recorder.Start(); err != nil {
			return fmt.Errorf("failed to start recording: %w", err)
		}

		ind := l.term.RecordingIndicator()
		waitErr := l.waitEnter(ctx)
		ind.Stop()

		if err := l.recorder.Stop(); err != nil {
			l.term.Error(fmt.Sprintf("RECORDING ERROR: %v", err))
		}

		if waitErr != nil {
			// Interrupted mid-recording: discard the capture.
			return l.shutdown()
		}

		l.processCapture(ctx)
		l.term.Println()
	}
}

// processCapture takes the recorded audio through transcription, display and
// clipboard. Errors are reported and the loop returns to idle.
func (l *Loop) processCapture(ctx context.Context) {
	wavPath := filepath.Join(l.tempDir, fmt.Sprintf("dictate-%d.wav", time.Now().UnixNano()))

	if err := l.recorder.WriteWAV(wavPath); err != nil {
		if errors.Is(err, audio.ErrNoAudio) {
			l.term.Error("NO AUDIO RECORDED")
		} else {
			l.term.Error(fmt.Sprintf("RECORDING ERROR: %v", err))
		}
		return
	}
	defer os.Remove(wavPath)

	l.term.Info("TRANSCRIBING AUDIO...")

	text, err := l.transcriber.Transcribe(ctx, wavPath)
	if err != nil {
		l.term.Error(fmt.Sprintf("TRANSCRIPTION ERROR: %v", err))
		if nerr := l.notifier.Error("Dictate", "Transcription failed"); nerr != nil {
			slog.Debug("notification failed", "error", nerr)
		}
		return
	}

	l.term.Success("TRANSCRIPTION COMPLETE")
	l.term.Transcript(text)

	if err := l.copyText(text); err != nil {
		l.term.Info("Manual copy needed (clipboard unavailable)")
	} else {
		l.term.Success("Copied to clipboard")
	}

	if err := l.notifier.Info("Dictate", "Transcript ready"); err != nil {
		slog.Debug("notification failed", "error", err)
	}
}

// waitEnter blocks until the user presses Enter, the context is canceled, or
// input ends.
func (l *Loop) waitEnter(ctx context.Context) error {
	lineCh := make(chan error, 1)
	go func() {
		_, err := l.in.ReadString('\n')
		lineCh <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-lineCh:
		return err
	}
}

func (l *Loop) shutdown() error {
	l.term.Println()
	l.term.Println()
	l.term.Info("SYSTEM SHUTDOWN")
	return nil
}
