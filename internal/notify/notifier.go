package notify

import "log"

// Notifier is the engine's notification sink. Implementations are
// fire-and-forget: delivery failures are logged, never surfaced to the engine.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Info(message string) {
	log.Printf("[INFO] %s", message)
}

func (n *LogNotifier) Warn(message string) {
	log.Printf("[WARN] %s", message)
}

func (n *LogNotifier) Error(message string) {
	log.Printf("[ERROR] %s", message)
}
