package beamtree

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "beamtree")

// Options holds optional collaborators for a Tree. A nil *Options, or any
// zero field, selects the default.
type Options struct {
	// Logger receives allocator events. Defaults to the package logger,
	// a logrus entry tagged component=beamtree.
	Logger *logrus.Entry

	// Metrics, if set, is updated as entries are created and reclaimed. One
	// Metrics may be shared by any number of trees.
	Metrics *Metrics
}

func (o *Options) logger() *logrus.Entry {
	if o == nil || o.Logger == nil {
		return log
	}
	return o.Logger
}

func (o *Options) metrics() *Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}

func debugEnabled(l *logrus.Entry) bool {
	return l.Logger.IsLevelEnabled(logrus.DebugLevel)
}
