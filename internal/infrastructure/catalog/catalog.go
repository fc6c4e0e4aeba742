// Package catalog is the static application registry and the content each
// application mounts.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/domain/repository"
)

type entry struct {
	desc    entity.ApplicationDescriptor
	factory port.ContentFactory
}

// Catalog holds application descriptors keyed by id. Built-in entries
// have priority over extras with the same id.
type Catalog struct {
	mu      sync.RWMutex
	builtIn map[entity.AppID]entry
	order   []entity.AppID
	extras  map[entity.AppID]entry
}

var (
	_ repository.ApplicationRepository = (*Catalog)(nil)
	_ port.ContentResolver             = (*Catalog)(nil)
)

// New returns a catalog holding the built-in applications.
func New() *Catalog {
	c := &Catalog{
		builtIn: make(map[entity.AppID]entry),
		extras:  make(map[entity.AppID]entry),
	}
	for _, b := range builtins() {
		c.register(b.desc, b.factory)
	}
	return c
}

// NewEmpty returns a catalog without built-ins.
func NewEmpty() *Catalog {
	return &Catalog{
		builtIn: make(map[entity.AppID]entry),
		extras:  make(map[entity.AppID]entry),
	}
}

// Register adds a built-in application. Registering an id twice replaces
// the earlier entry but keeps its position.
func (c *Catalog) Register(desc entity.ApplicationDescriptor, factory port.ContentFactory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(desc, factory)
}

func (c *Catalog) register(desc entity.ApplicationDescriptor, factory port.ContentFactory) {
	if _, ok := c.builtIn[desc.ID]; !ok {
		c.order = append(c.order, desc.ID)
	}
	c.builtIn[desc.ID] = entry{desc: desc, factory: factory}
}

// Merge adds extra descriptors, typically from the config file. Extras that
// collide with a built-in id are skipped and returned.
func (c *Catalog) Merge(extras []entity.ApplicationDescriptor) []entity.AppID {
	c.mu.Lock()
	defer c.mu.Unlock()

	var skipped []entity.AppID
	for _, d := range extras {
		if _, ok := c.builtIn[d.ID]; ok {
			skipped = append(skipped, d.ID)
			continue
		}
		desc := d
		c.extras[d.ID] = entry{
			desc:    desc,
			factory: func() port.ContentUnit { return newPlaceholder(desc.Title) },
		}
	}
	return skipped
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id entity.AppID) (entity.ApplicationDescriptor, error) {
	e, ok := c.get(id)
	if !ok {
		return entity.ApplicationDescriptor{}, fmt.Errorf("%w: %s", entity.ErrUnknownApplication, id)
	}
	return e.desc, nil
}

// List returns built-ins in registration order followed by extras sorted by id.
func (c *Catalog) List() []entity.ApplicationDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.ApplicationDescriptor, 0, len(c.order)+len(c.extras))
	for _, id := range c.order {
		out = append(out, c.builtIn[id].desc)
	}

	extras := make([]entity.ApplicationDescriptor, 0, len(c.extras))
	for _, e := range c.extras {
		extras = append(extras, e.desc)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].ID < extras[j].ID })

	return append(out, extras...)
}

// Resolve returns the content factory for id.
func (c *Catalog) Resolve(id entity.AppID) (port.ContentFactory, error) {
	e, ok := c.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownApplication, id)
	}
	return e.factory, nil
}

func (c *Catalog) get(id entity.AppID) (entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e, ok := c.builtIn[id]; ok {
		return e, true
	}
	e, ok := c.extras[id]
	return e, ok
}
