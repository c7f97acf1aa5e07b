package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movement(product uuid.UUID, mt MovementType, notes string) Movement {
	return Movement{
		ID:        uuid.New(),
		ProductID: product,
		Type:      mt,
		Quantity:  -1,
		Notes:     notes,
		CreatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestExtractReference(t *testing.T) {
	cases := []struct {
		notes string
		want  string
	}{
		{"Stock deducted for order ORD-20260314-0042", "ORD-20260314-0042"},
		{"TXN-8F3A21 settled", "TXN-8F3A21"},
		{"Received against PO-1009", "PO-1009"},
		{"Manual recount ADJ-77", "ADJ-77"},
		{"routine cycle count", ""},
		{"", ""},
	}
	for _, tc := range cases {
		got := ExtractReference(tc.notes)
		if tc.want == "" {
			assert.Nil(t, got, "notes %q", tc.notes)
		} else {
			require.NotNil(t, got, "notes %q", tc.notes)
			assert.Equal(t, tc.want, *got)
		}
	}
}

func TestMovement_TransactionRef(t *testing.T) {
	t.Run("structured reference wins over notes", func(t *testing.T) {
		ref := "ORD-1"
		m := movement(uuid.New(), MovementSale, "legacy note ORD-2")
		m.Reference = &ref
		require.NotNil(t, m.TransactionRef())
		assert.Equal(t, "ORD-1", *m.TransactionRef())
	})

	t.Run("falls back to parsing notes", func(t *testing.T) {
		m := movement(uuid.New(), MovementSale, "sale ORD-2")
		require.NotNil(t, m.TransactionRef())
		assert.Equal(t, "ORD-2", *m.TransactionRef())
	})

	t.Run("empty structured reference is treated as absent", func(t *testing.T) {
		empty := ""
		m := movement(uuid.New(), MovementSale, "no token here")
		m.Reference = &empty
		assert.Nil(t, m.TransactionRef())
	})
}

func TestGroupRelatedMovements(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	t.Run("business movement becomes primary", func(t *testing.T) {
		reservation := movement(productA, MovementReservation, "hold for ORD-100")
		sale := movement(productA, MovementSale, "sold ORD-100")
		release := movement(productA, MovementRelease, "release ORD-100")

		groups := GroupRelatedMovements([]Movement{reservation, sale, release})
		require.Len(t, groups, 1)
		assert.Equal(t, sale.ID, groups[0].Primary.ID)
		require.NotNil(t, groups[0].TransactionRef)
		assert.Equal(t, "ORD-100", *groups[0].TransactionRef)
		require.Len(t, groups[0].Related, 2)
	})

	t.Run("same reference different products stay separate", func(t *testing.T) {
		a := movement(productA, MovementSale, "ORD-200")
		b := movement(productB, MovementSale, "ORD-200")
		groups := GroupRelatedMovements([]Movement{a, b})
		require.Len(t, groups, 2)
		assert.Equal(t, a.ID, groups[0].Primary.ID)
		assert.Equal(t, b.ID, groups[1].Primary.ID)
	})

	t.Run("movement without a reference is a singleton", func(t *testing.T) {
		lone := movement(productA, MovementAdjustment, "shrinkage recount")
		groups := GroupRelatedMovements([]Movement{lone})
		require.Len(t, groups, 1)
		assert.Nil(t, groups[0].TransactionRef)
		assert.Empty(t, groups[0].Related)
	})

	t.Run("unmatched reference still forms its own group", func(t *testing.T) {
		lone := movement(productA, MovementSale, "ORD-300")
		groups := GroupRelatedMovements([]Movement{lone})
		require.Len(t, groups, 1)
		require.NotNil(t, groups[0].TransactionRef)
		assert.Equal(t, "ORD-300", *groups[0].TransactionRef)
		assert.Empty(t, groups[0].Related)
	})

	t.Run("all system movements fall back to first as primary", func(t *testing.T) {
		first := movement(productA, MovementReservation, "ORD-400")
		second := movement(productA, MovementRelease, "ORD-400")
		groups := GroupRelatedMovements([]Movement{first, second})
		require.Len(t, groups, 1)
		assert.Equal(t, first.ID, groups[0].Primary.ID)
	})

	t.Run("group count equals distinct keys plus singletons", func(t *testing.T) {
		movements := []Movement{
			movement(productA, MovementSale, "ORD-1"),
			movement(productA, MovementReservation, "ORD-1"),
			movement(productB, MovementPurchase, "PO-7"),
			movement(productB, MovementAdjustment, "no token"),
		}
		groups := GroupRelatedMovements(movements)
		assert.Len(t, groups, 3)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		movements := []Movement{
			movement(productA, MovementSale, "ORD-1"),
			movement(productA, MovementRelease, "ORD-1"),
			movement(productB, MovementAdjustment, "recount"),
		}
		assert.Equal(t, GroupRelatedMovements(movements), GroupRelatedMovements(movements))
	})
}
