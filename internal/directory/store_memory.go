package directory

import (
	"context"
	"sort"
	"sync"

	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// MemoryDirectory is an in-memory line directory fed by the platform layer.
// Activation and deactivation mirror SIM/eSIM profile lifecycle events.
type MemoryDirectory struct {
	mu    sync.RWMutex
	lines map[domain.LineID]Line
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{lines: make(map[domain.LineID]Line)}
}

// Activate registers a line as active, overwriting any previous entry.
func (d *MemoryDirectory) Activate(_ context.Context, line Line) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	line.Active = true
	d.lines[line.ID] = line
	return nil
}

// Deactivate removes a line from the active set.
// Returns sentinel.ErrNotFound if the line was not active.
func (d *MemoryDirectory) Deactivate(_ context.Context, id domain.LineID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.lines[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(d.lines, id)
	return nil
}

// ActiveLines returns the active lines ordered by line ID.
func (d *MemoryDirectory) ActiveLines(_ context.Context) ([]Line, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Line, 0, len(d.lines))
	for _, line := range d.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
