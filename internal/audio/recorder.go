package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gordonklaus/portaudio"

	"github.com/cinveen/dictate/internal/config"
)

// ErrNoAudio is returned when a recording produced no samples.
var ErrNoAudio = errors.New("no audio recorded")

// framesPerBuffer is the portaudio callback granularity. 512 frames at 16kHz
// is 32ms per callback, small enough that stopping feels instant.
const framesPerBuffer = 512

// Recorder captures microphone audio through portaudio. Samples accumulate in
// memory while recording is active and are written out as 16-bit PCM WAV.
type Recorder struct {
	sampleRate int
	channels   int
	device     string

	mu        sync.Mutex
	recording bool
	samples   []int16
	startedAt time.Time

	stream *portaudio.Stream
}

// NewRecorder creates a recorder with the given audio settings.
func NewRecorder(cfg config.AudioConfig) *Recorder {
	return &Recorder{
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		device:     cfg.Device,
	}
}

// Start opens the input stream and begins capturing. Returns an error if a
// recording is already in progress or the device cannot be opened.
func (r *Recorder) Start() error {
	r.mu.Lock()
	if r.recording {
		r.mu.Unlock()
		return fmt.Errorf("already recording")
	}
	r.mu.Unlock()

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	dev, err := findInputDevice(r.device)
	if err != nil {
		portaudio.Terminate()
		return err
	}

	params := portaudio.LowLatencyParameters(dev, nil)
	params.Input.Channels = r.channels
	params.SampleRate = float64(r.sampleRate)
	params.FramesPerBuffer = framesPerBuffer

	stream, err := portaudio.OpenStream(params, r.capture)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open input stream: %w", err)
	}

	r.mu.Lock()
	r.samples = r.samples[:0]
	r.recording = true
	r.startedAt = time.Now()
	r.stream = stream
	r.mu.Unlock()

	if err := stream.Start(); err != nil {
		r.mu.Lock()
		r.recording = false
		r.stream = nil
		r.mu.Unlock()
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start input stream: %w", err)
	}

	slog.Debug("recording started",
		"device", dev.Name,
		"sample_rate", r.sampleRate,
		"channels", r.channels)
	return nil
}

// capture is the portaudio callback. It appends the incoming buffer while
// recording is active.
func (r *Recorder) capture(in []int16) {
	r.mu.Lock()
	if r.recording {
		r.samples = append(r.samples, in...)
	}
	r.mu.Unlock()
}

// Stop ends the capture and releases the audio device. Calling Stop without a
// prior Start is a no-op.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil
	}
	r.recording = false
	elapsed := time.Since(r.startedAt)
	stream := r.stream
	r.stream = nil
	n := len(r.samples)
	r.mu.Unlock()

	if stream != nil {
		if err := stream.Stop(); err != nil {
			stream.Close()
			portaudio.Terminate()
			return fmt.Errorf("failed to stop input stream: %w", err)
		}
		stream.Close()
		portaudio.Terminate()
	}

	slog.Debug("recording stopped", "samples", n, "duration", elapsed)
	return nil
}

// WriteWAV encodes the captured samples as 16-bit PCM WAV at path.
// Returns ErrNoAudio when nothing was captured.
func (r *Recorder) WriteWAV(path string) error {
	r.mu.Lock()
	samples := make([]int16, len(r.samples))
	copy(samples, r.samples)
	r.mu.Unlock()

	if len(samples) == 0 {
		return ErrNoAudio
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}

	enc := wav.NewEncoder(f, r.sampleRate, 16, r.channels, 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: r.channels,
			SampleRate:  r.sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to finalize wav file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close wav file: %w", err)
	}

	return nil
}

// findInputDevice resolves a configured device name to an input-capable
// portaudio device. "default" or empty selects the system default input.
// Anything else matches case-insensitively against device name substrings.
func findInputDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" || name == "default" {
		dev, err := portaudio.DefaultInputDevice()
		if err != nil {
			return nil, fmt.Errorf("no default input device: %w", err)
		}
		return dev, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list audio devices: %w", err)
	}

	want := strings.ToLower(name)
	for _, dev := range devices {
		if dev.MaxInputChannels == 0 {
			continue
		}
		if strings.Contains(strings.ToLower(dev.Name), want) {
			return dev, nil
		}
	}

	return nil, fmt.Errorf("no input device matching %q", name)
}
