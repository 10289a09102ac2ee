package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/events.yml
var defaultEvents []byte

// Event is a purchasable, later completable program entry. Records are
// immutable after load; the engine references them by ID only.
type Event struct {
	ID           int
	Name         string
	Cost         int
	BaseScore    int
	Size         int // 0/1/2 display class
	Requirements []Asset
	Penalties    []int // indexed by completion rank after the first
}

// Catalog is a read-only lookup table of events keyed by id.
type Catalog struct {
	events map[int]Event
	order  []int
}

// eventRecord is the YAML wire form of an Event.
type eventRecord struct {
	ID            int      `yaml:"id"`
	Name          string   `yaml:"name"`
	Cost          int      `yaml:"cost"`
	BaseScore     int      `yaml:"base_score"`
	Size          int      `yaml:"size"`
	Requirements  []string `yaml:"requirements"`
	PenaltyScores []int    `yaml:"penalty_scores"`
}

type eventsFile struct {
	Events []eventRecord `yaml:"events"`
}

// Load parses a catalog data file. Any malformed entry is fatal: callers
// are expected to abort startup on error.
func Load(data []byte) (*Catalog, error) {
	var file eventsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse events file: %w", err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("events file contains no events")
	}

	c := &Catalog{events: make(map[int]Event, len(file.Events))}
	for _, rec := range file.Events {
		ev, err := rec.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", rec.ID, err)
		}
		if _, dup := c.events[ev.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %d", ev.ID)
		}
		c.events[ev.ID] = ev
		c.order = append(c.order, ev.ID)
	}
	return c, nil
}

// Default returns the catalog built into the binary.
func Default() (*Catalog, error) {
	return Load(defaultEvents)
}

func (r eventRecord) toEvent() (Event, error) {
	if r.Name == "" {
		return Event{}, fmt.Errorf("missing name")
	}
	if r.Cost <= 0 {
		return Event{}, fmt.Errorf("cost must be positive, got %d", r.Cost)
	}
	if len(r.Requirements) == 0 {
		return Event{}, fmt.Errorf("missing requirements")
	}
	reqs := make([]Asset, len(r.Requirements))
	for i, name := range r.Requirements {
		a, err := ParseAsset(name)
		if err != nil {
			return Event{}, err
		}
		reqs[i] = a
	}
	for _, p := range r.PenaltyScores {
		if p < 0 {
			return Event{}, fmt.Errorf("negative penalty score %d", p)
		}
	}
	return Event{
		ID:           r.ID,
		Name:         r.Name,
		Cost:         r.Cost,
		BaseScore:    r.BaseScore,
		Size:         r.Size,
		Requirements: reqs,
		Penalties:    r.PenaltyScores,
	}, nil
}

// Get returns the event with the given id.
func (c *Catalog) Get(id int) (Event, bool) {
	ev, ok := c.events[id]
	return ev, ok
}

// Events returns all events in file order.
func (c *Catalog) Events() []Event {
	out := make([]Event, len(c.order))
	for i, id := range c.order {
		out[i] = c.events[id]
	}
	return out
}

// Len returns the number of events in the catalog.
func (c *Catalog) Len() int {
	return len(c.events)
}
