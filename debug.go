package blueberry

import "strings"

// DebugSink receives one-line component descriptions for an external debug
// view.
type DebugSink interface {
	Text(line string)
}

// DebugLines is a DebugSink that collects lines in order.
type DebugLines []string

// Text implements DebugSink.
func (d *DebugLines) Text(line string) {
	*d = append(*d, line)
}

// Reset drops all collected lines, keeping capacity.
func (d *DebugLines) Reset() {
	*d = (*d)[:0]
}

// String joins the lines with newlines.
func (d DebugLines) String() string {
	return strings.Join(d, "\n")
}

// indentSink prefixes every line, nesting component lines under their
// object's header.
type indentSink struct {
	sink   DebugSink
	prefix string
}

func (s indentSink) Text(line string) {
	s.sink.Text(s.prefix + line)
}
