package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/rpaiva/warehouse-tracker/internal/models"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

func newTestLedger(t *testing.T) (*CSVMovementRepository, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	r, err := NewCSVMovementRepository(context.Background(), st)
	if err != nil {
		t.Fatalf("NewCSVMovementRepository: %v", err)
	}
	return r, st
}

func TestLedgerSeedsDefaultsOnAbsentBlob(t *testing.T) {
	r, st := newTestLedger(t)

	movements, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(movements) != 7 {
		t.Fatalf("expected 7 seeded movements, got %d", len(movements))
	}

	if _, ok, _ := st.Get(context.Background(), store.MovementsKey); !ok {
		t.Errorf("expected seeded blob persisted")
	}
}

func TestLedgerSeedsDefaultsOnEmptyBlob(t *testing.T) {
	st := store.NewMemoryStore()
	st.Set(context.Background(), store.MovementsKey, "")

	r, err := NewCSVMovementRepository(context.Background(), st)
	if err != nil {
		t.Fatalf("NewCSVMovementRepository: %v", err)
	}
	movements, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(movements) != 7 {
		t.Fatalf("expected 7 seeded movements for an empty blob, got %d", len(movements))
	}

	text, _, _ := st.Get(context.Background(), store.MovementsKey)
	if text == "" {
		t.Errorf("expected seed written back over the empty blob")
	}
}

func TestLedgerRecord(t *testing.T) {
	r, _ := newTestLedger(t)

	m, err := r.Record("1", "MDF 15mm Branco", models.MovementAdd, 10, "Compra")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if m.ID == "" || m.Date == "" {
		t.Errorf("expected id and date assigned, got %+v", m)
	}
	if m.Notes != "Compra" {
		t.Errorf("expected caller notes kept, got %q", m.Notes)
	}

	movements, _ := r.GetAll()
	if len(movements) != 8 {
		t.Errorf("expected 8 movements, got %d", len(movements))
	}
}

func TestLedgerRecordDefaultNotes(t *testing.T) {
	r, _ := newTestLedger(t)

	add, _ := r.Record("1", "MDF 15mm Branco", models.MovementAdd, 1, "")
	if add.Notes != "Stock addition" {
		t.Errorf("expected default ADD note, got %q", add.Notes)
	}
	remove, _ := r.Record("1", "MDF 15mm Branco", models.MovementRemove, 1, "")
	if remove.Notes != "Stock removal" {
		t.Errorf("expected default REMOVE note, got %q", remove.Notes)
	}
}

func TestLedgerRecordInvalidQuantity(t *testing.T) {
	r, _ := newTestLedger(t)

	for _, q := range []int{0, -5} {
		if _, err := r.Record("1", "MDF 15mm Branco", models.MovementAdd, q, ""); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}

	movements, _ := r.GetAll()
	if len(movements) != 7 {
		t.Errorf("failed records must not append, got %d movements", len(movements))
	}
}

func TestLedgerIDsAreUnique(t *testing.T) {
	r, _ := newTestLedger(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		m, err := r.Record("1", "MDF 15mm Branco", models.MovementAdd, 1, "")
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate movement id %q", m.ID)
		}
		seen[m.ID] = true
	}
}
