package logger

import (
	"github.com/maxaizer/staff-agency/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// errorCounterHook feeds agency_errors_total. Warnings count only when classified,
// which is how rejected operator input is logged.
type errorCounterHook struct{}

func (h *errorCounterHook) Fire(entry *log.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		if entry.Level == log.WarnLevel {
			return nil
		}
		errorType = "unknown"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *errorCounterHook) Levels() []log.Level {
	return []log.Level{
		log.WarnLevel,
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}
