package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rampage/engine"
)

// Record is one resolved turn in the trace stream
type Record struct {
	Game      string    `yaml:"game"`
	Turn      int       `yaml:"turn"`
	At        time.Time `yaml:"at"`
	Variant   string    `yaml:"variant"`
	Pos       [2]int    `yaml:"pos,flow"`
	HP        float64   `yaml:"hp"`
	Hunger    int       `yaml:"hunger"`
	Berserk   bool      `yaml:"berserk,omitempty"`
	Score     int       `yaml:"score"`
	Kills     int       `yaml:"kills"`
	Enemies   int       `yaml:"enemies"`
	Civilians int       `yaml:"civilians"`
	Fires     int       `yaml:"fires"`
	Wind      string    `yaml:"wind"`
	BaseAlive bool      `yaml:"base_alive"`
	Events    []string  `yaml:"events,omitempty"`
	GameOver  string    `yaml:"game_over,omitempty"`
}

// FromSnapshot builds a record; events are the log entries newer than since
func FromSnapshot(snap engine.Snapshot, at time.Time, since uint64) Record {
	r := Record{
		Game:      snap.GameID.String(),
		Turn:      snap.Turn,
		At:        at,
		Variant:   string(snap.Creature.Variant),
		Pos:       [2]int{snap.Creature.Pos.X, snap.Creature.Pos.Y},
		HP:        snap.Creature.HP,
		Hunger:    snap.Creature.Hunger,
		Berserk:   snap.Creature.Berserk,
		Score:     snap.Score,
		Kills:     snap.Kills,
		Enemies:   len(snap.Enemies),
		Civilians: len(snap.Civilians),
		Fires:     len(snap.Fires),
		Wind:      snap.Wind.String(),
		BaseAlive: snap.BaseAlive,
		GameOver:  snap.Cause.String(),
	}
	for _, e := range snap.Log {
		if e.Seq > since {
			r.Events = append(r.Events, e.Message)
		}
	}
	return r
}

// Writer appends records as a multi-document YAML stream
// Safe for concurrent use
type Writer struct {
	mu     sync.Mutex
	enc    *yaml.Encoder
	closer io.Closer
	count  int
}

// NewWriter streams records to w; Close closes w when it is an io.Closer
func NewWriter(w io.Writer) *Writer {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	tw := &Writer{enc: enc}
	if c, ok := w.(io.Closer); ok {
		tw.closer = c
	}
	return tw
}

// Create opens path for appending, creating parent directories
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create trace dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	return NewWriter(f), nil
}

// Write encodes one record
func (w *Writer) Write(r Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(r); err != nil {
		return fmt.Errorf("encode trace record: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of records written
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes the stream and closes the underlying writer
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.enc.Close()
	if w.closer != nil {
		err = errors.Join(err, w.closer.Close())
	}
	return err
}

// Read decodes every record of a stream
func Read(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var out []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("decode trace record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
}
