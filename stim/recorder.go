package stim

import "log"

// Recorder receives attribute mutations of stimuli that have auto
// logging enabled. The runtime decides where the records end up.
type Recorder interface {
	Record(name string, value any)
}

// LogRecorder writes attribute records to the standard logger.
type LogRecorder struct{}

func (LogRecorder) Record(name string, value any) {
	log.Printf("[stim] %s = %v", name, value)
}

// NopRecorder drops all records.
type NopRecorder struct{}

func (NopRecorder) Record(string, any) {}
