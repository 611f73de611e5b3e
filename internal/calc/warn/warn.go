// Package warn collects the caveats raised while a single calculation runs.
package warn

import (
	"fmt"
	"slices"
)

// Log is an ordered list of unique warning messages. The zero value is ready to use.
type Log []string

// Add appends a message unless an identical one is already present.
func (l *Log) Add(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if slices.Contains(*l, msg) {
		return
	}
	*l = append(*l, msg)
}

// Extend adds every message of msgs, keeping the first occurrence only.
func (l *Log) Extend(msgs []string) {
	for _, m := range msgs {
		l.Add(m)
	}
}

// List returns a copy that encodes as [] rather than null when empty.
func (l Log) List() []string {
	if len(l) == 0 {
		return []string{}
	}
	return slices.Clone(l)
}
