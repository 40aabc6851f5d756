package models

import (
	"encoding/json"
	"time"
)

// Counter names one tracker field.
type Counter string

// Tracker counters in export order.
const (
	RoomsSold Counter = "roomsSoldCount"
	Adults    Counter = "adultsCount"
	Children  Counter = "childrenCount"
	Arrivals  Counter = "arrivalsCount"
)

// Counters lists every counter in the fixed flat-text order.
var Counters = []Counter{RoomsSold, Adults, Children, Arrivals}

// Label returns the short display label for c.
func (c Counter) Label() string {
	switch c {
	case RoomsSold:
		return "RMS"
	case Adults:
		return "A"
	case Children:
		return "C"
	case Arrivals:
		return "RES"
	}
	return ""
}

// Valid reports whether c is one of the known counters.
func (c Counter) Valid() bool {
	return c.Label() != ""
}

// Tracker holds four independent non-negative counters.
type Tracker struct {
	RoomsSoldCount int `json:"roomsSoldCount"`
	AdultsCount    int `json:"adultsCount"`
	ChildrenCount  int `json:"childrenCount"`
	ArrivalsCount  int `json:"arrivalsCount"`
}

// Get returns the value of counter c. Unknown counters read as zero.
func (t *Tracker) Get(c Counter) int {
	if p := t.field(c); p != nil {
		return *p
	}
	return 0
}

// Set stores v into counter c, clamped at zero. It reports whether c is known.
func (t *Tracker) Set(c Counter, v int) bool {
	p := t.field(c)
	if p == nil {
		return false
	}
	*p = max(v, 0)
	return true
}

// Values returns the counters in Counters order.
func (t *Tracker) Values() [4]int {
	return [4]int{t.RoomsSoldCount, t.AdultsCount, t.ChildrenCount, t.ArrivalsCount}
}

func (t *Tracker) field(c Counter) *int {
	switch c {
	case RoomsSold:
		return &t.RoomsSoldCount
	case Adults:
		return &t.AdultsCount
	case Children:
		return &t.ChildrenCount
	case Arrivals:
		return &t.ArrivalsCount
	}
	return nil
}

// Millis is a timestamp encoded as Unix milliseconds in JSON.
type Millis struct {
	time.Time
}

// MarshalJSON encodes the time as a Unix millisecond number.
func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(m.UnixMilli())
}

// UnmarshalJSON accepts a Unix millisecond number or an RFC 3339 string.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		if ms == 0 {
			m.Time = time.Time{}
		} else {
			m.Time = time.UnixMilli(ms)
		}
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	m.Time = t
	return nil
}
