// Package store provides the key-value persistence port behind the catalog
// and ledger. Each collection is one named text blob; implementations only
// need Get/Set plus a multi-key Apply so paired collections can commit
// together.
package store

import "context"

// Blob keys for the two persisted collections.
const (
	ProductsKey  = "products"
	MovementsKey = "movements"
)

// Store is the persistence port. Get reports absence without error so a
// first access can seed defaults. Apply writes several keys as one commit;
// backends make it atomic where they can.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Apply(ctx context.Context, entries map[string]string) error
}
