package ui

import (
	"fmt"
	"time"
)

var recDots = [...]string{"   ", ".  ", ".. ", "..."}

// indicatorInterval is the redraw period of the recording animation.
const indicatorInterval = 500 * time.Millisecond

// Indicator is the animated recording line with a running duration counter.
type Indicator struct {
	term *Terminal
	stop chan struct{}
	done chan struct{}
}

// RecordingIndicator starts the animation. Call Stop to end it; the indicator
// redraws in place until then.
func (t *Terminal) RecordingIndicator() *Indicator {
	ind := &Indicator{
		term: t,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go ind.run()
	return ind
}

func (ind *Indicator) run() {
	defer close(ind.done)

	start := time.Now()
	ticker := time.NewTicker(indicatorInterval)
	defer ticker.Stop()

	for phase := 0; ; phase++ {
		fmt.Fprint(ind.term.out, "\r"+ind.term.indicatorFrame(time.Since(start), phase))
		select {
		case <-ind.stop:
			return
		case <-ticker.C:
		}
	}
}

// Stop halts the animation and moves the cursor to a fresh line.
func (ind *Indicator) Stop() {
	close(ind.stop)
	<-ind.done
	fmt.Fprintln(ind.term.out)
}

func (t *Terminal) indicatorFrame(elapsed time.Duration, phase int) string {
	return fmt.Sprintf("%s %s %s %s",
		t.red.Sprint("● REC"),
		recDots[phase%len(recDots)],
		t.green.Sprintf("[%s]", formatClock(elapsed)),
		t.dim.Sprint("Press ENTER to stop"))
}

// formatClock renders a duration as MM:SS.
func formatClock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
