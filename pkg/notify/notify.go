package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier sends desktop notifications.
type Notifier struct{}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{}
}

// Info sends an informational desktop notification.
func (n *Notifier) Info(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// Error sends an error desktop notification.
func (n *Notifier) Error(title, message string) error {
	if err := beeep.Alert(title, message, ""); err != nil {
		return fmt.Errorf("failed to send error notification: %w", err)
	}
	return nil
}
