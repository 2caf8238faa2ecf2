package network

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// DiscardLogger returns a logger that drops everything. It is the default for
// components constructed without one.
func DiscardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
