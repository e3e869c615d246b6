package repo

import (
	"context"
	"sync"

	"github.com/rpaiva/warehouse-tracker/internal/csvtext"
	"github.com/rpaiva/warehouse-tracker/internal/models"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

// CSVMovementRepository holds the append-only movement history and
// re-persists the full CSV blob after every append. Existing entries are
// never edited or removed.
type CSVMovementRepository struct {
	mu        sync.Mutex
	st        store.Store
	movements []models.Movement
}

// NewCSVMovementRepository loads the movements blob, seeding and persisting
// the default history when the blob is absent or empty.
func NewCSVMovementRepository(ctx context.Context, st store.Store) (*CSVMovementRepository, error) {
	text, ok, err := st.Get(ctx, store.MovementsKey)
	if err != nil {
		return nil, &PersistenceError{Key: store.MovementsKey, Err: err}
	}

	r := &CSVMovementRepository{st: st}
	if !ok || text == "" {
		r.movements = SeedMovements()
		if err := st.Set(ctx, store.MovementsKey, csvtext.EncodeMovements(r.movements)); err != nil {
			return nil, &PersistenceError{Key: store.MovementsKey, Err: err}
		}
		return r, nil
	}

	movements, err := csvtext.DecodeMovements(text)
	if err != nil {
		return nil, &EncodingError{Key: store.MovementsKey, Err: err}
	}
	r.movements = movements
	return r, nil
}

// GetAll retrieves all movements in recorded order.
func (r *CSVMovementRepository) GetAll() ([]models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Movement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

// Record validates, appends and persists a new movement.
func (r *CSVMovementRepository) Record(productID, productName, mvType string, quantity int, notes string) (models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, err := r.appendLocked(productID, productName, mvType, quantity, notes)
	if err != nil {
		return models.Movement{}, err
	}
	return m, r.persistLocked()
}

// Append validates and appends a movement in memory without persisting. Used
// by the stock-adjustment transaction, which commits both blobs in one batch.
func (r *CSVMovementRepository) Append(productID, productName, mvType string, quantity int, notes string) (models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appendLocked(productID, productName, mvType, quantity, notes)
}

// EncodeSnapshot returns the current history in its persisted encoding.
func (r *CSVMovementRepository) EncodeSnapshot() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return csvtext.EncodeMovements(r.movements)
}

func (r *CSVMovementRepository) appendLocked(productID, productName, mvType string, quantity int, notes string) (models.Movement, error) {
	if quantity <= 0 {
		return models.Movement{}, ErrInvalidQuantity
	}
	if notes == "" {
		if mvType == models.MovementRemove {
			notes = "Stock removal"
		} else {
			notes = "Stock addition"
		}
	}
	m := models.Movement{
		ID:          nextID(),
		ProductID:   productID,
		ProductName: productName,
		Type:        mvType,
		Quantity:    quantity,
		Date:        nowRFC3339(),
		Notes:       notes,
	}
	r.movements = append(r.movements, m)
	return m, nil
}

func (r *CSVMovementRepository) persistLocked() error {
	text := csvtext.EncodeMovements(r.movements)
	if err := r.st.Set(context.Background(), store.MovementsKey, text); err != nil {
		return &PersistenceError{Key: store.MovementsKey, Err: err}
	}
	return nil
}
