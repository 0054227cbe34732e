package tempo

import (
	"bytes"
	"encoding/json"
	"time"
)

// Measure is one completed measurement: a name and the elapsed time between
// its reference instant and the [Timer.Measure] call that recorded it.
//
// In JSON a Measure is {"name": ..., "duration": ...} with the duration in
// fractional milliseconds, matching the snapshot compatibility contract.
type Measure struct {
	Name     string
	Duration time.Duration
}

// Millis returns the duration in fractional milliseconds, the unit used by
// the JSON form.
func (m Measure) Millis() float64 {
	return float64(m.Duration) / float64(time.Millisecond)
}

func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string  `json:"name"`
		Duration float64 `json:"duration"`
	}{
		Name:     m.Name,
		Duration: m.Millis(),
	})
}

// # Snapshot
//
// The nested, read-only export of a [Timer]. Measures is always present in
// the JSON form, even when empty; the children key appears only when the
// timer had at least one child context. Consumers may rely on that
// presence/absence distinction.
type Snapshot struct {
	Measures []Measure `json:"measures"`
	Children Children  `json:"children,omitempty"`
}

// Child pairs a child context's registered name with its snapshot.
type Child struct {
	Name     string
	Snapshot *Snapshot
}

// Children holds child snapshots in context insertion order. It marshals as
// a JSON object whose keys keep that order, which plain maps would not.
type Children []Child

// Get returns the snapshot registered under name, or nil if there is none.
func (c Children) Get(name string) *Snapshot {
	for _, child := range c {
		if child.Name == name {
			return child.Snapshot
		}
	}
	return nil
}

func (c Children) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')

	for i, child := range c {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(child.Name)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')

		val, err := json.Marshal(child.Snapshot)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}

	b.WriteByte('}')
	return b.Bytes(), nil
}
