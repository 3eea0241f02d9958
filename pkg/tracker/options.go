// Package tracker generates the Fabric capacity migration tracking
// workbook.
package tracker

import "time"

// DefaultOutput is the workbook path used when no output path is given.
const DefaultOutput = "fabric_capacity_migration_tracker.xlsx"

// Options configures workbook generation.
type Options struct {
	// Output is the file path the workbook is written to. An existing
	// file at that path is overwritten.
	Output string
	// BaseDate anchors the Migration Phases schedule. The zero value
	// means today.
	BaseDate time.Time
}

// DefaultOptions returns options producing the standard tracker in the
// working directory.
func DefaultOptions() Options {
	return Options{Output: DefaultOutput}
}

func (o Options) baseDate() time.Time {
	if o.BaseDate.IsZero() {
		return time.Now()
	}
	return o.BaseDate
}
