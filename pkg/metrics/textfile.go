package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps every registered metric to path in the text
// exposition format read by the node-exporter textfile collector. An empty
// path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
