package notify

import (
	"log"
	"strings"
)

// Notifier delivers a local notification. It is a fire-and-forget
// collaborator: the reminder layer hands over a title and body once
// the fire instant arrives and does not track delivery.
type Notifier interface {
	Notify(title, body string) error
}

// LogNotifier writes notifications to the process log. It stands in
// for an OS notification surface on headless installs.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(title, body string) error {
	log.Printf("[Notification] %s - %s", title, strings.ReplaceAll(body, "\n", " | "))
	return nil
}
