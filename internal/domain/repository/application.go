package repository

import "github.com/bnema/dumbdesk/internal/domain/entity"

// ApplicationRepository is the read-only application catalog.
// Implementations are static tables built at startup, so lookups do no I/O
// and are safe to call from the session reducer.
type ApplicationRepository interface {
	// Lookup returns the descriptor for id.
	// Returns an error wrapping entity.ErrUnknownApplication when id is not registered.
	Lookup(id entity.AppID) (entity.ApplicationDescriptor, error)

	// List returns every descriptor, sorted by category then title.
	List() []entity.ApplicationDescriptor
}
