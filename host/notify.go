package host

import log "github.com/sirupsen/logrus"

// LogNotifier logs the message and returns at once.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string) {
	log.WithField("title", title).Info(message)
}
