package event

import "github.com/lixenwraith/rampage/parameter"

// Entry is one human-readable log line
type Entry struct {
	// Seq increases monotonically per game and identifies the entry
	Seq      uint64
	Turn     int
	Message  string
	Severity Severity
}

// Log is a fixed-capacity ring of the most recent entries
// It is a value type: copying a Log snapshots it, appends never touch other copies
type Log struct {
	entries [parameter.LogCapacity]Entry
	head    int // index of the oldest entry
	count   int
	nextSeq uint64
}

// Add appends an entry, overwriting the oldest when full
func (l *Log) Add(turn int, severity Severity, msg string) Entry {
	l.nextSeq++
	e := Entry{Seq: l.nextSeq, Turn: turn, Message: msg, Severity: severity}
	if l.count < parameter.LogCapacity {
		l.entries[(l.head+l.count)%parameter.LogCapacity] = e
		l.count++
		return e
	}
	l.entries[l.head] = e
	l.head = (l.head + 1) % parameter.LogCapacity
	return e
}

// Len returns the number of retained entries
func (l *Log) Len() int {
	return l.count
}

// Entries returns retained entries oldest first
func (l *Log) Entries() []Entry {
	out := make([]Entry, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head+i)%parameter.LogCapacity]
	}
	return out
}

// Since returns retained entries with Seq greater than seq, oldest first
func (l *Log) Since(seq uint64) []Entry {
	var out []Entry
	for i := 0; i < l.count; i++ {
		e := l.entries[(l.head+i)%parameter.LogCapacity]
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// LastSeq returns the sequence number of the newest entry, 0 when empty
func (l *Log) LastSeq() uint64 {
	return l.nextSeq
}
