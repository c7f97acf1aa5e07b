package inventory

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MovementType identifies what caused an inventory movement. Business types
// are customer-facing transactions; system types are internal bookkeeping
// around them (reservations and releases) and are always subordinate.
type MovementType string

const (
	MovementSale        MovementType = "sale"
	MovementPurchase    MovementType = "purchase"
	MovementAdjustment  MovementType = "adjustment"
	MovementTransfer    MovementType = "transfer"
	MovementReturn      MovementType = "return"
	MovementReservation MovementType = "reservation"
	MovementRelease     MovementType = "release"
)

// IsBusiness reports whether the type represents a customer-facing
// transaction rather than internal bookkeeping.
func (t MovementType) IsBusiness() bool {
	switch t {
	case MovementSale, MovementPurchase, MovementAdjustment, MovementTransfer, MovementReturn:
		return true
	default:
		return false
	}
}

// Movement is one inventory movement record. Reference is the structured
// transaction reference; legacy rows carry the token embedded in free-text
// Notes instead.
type Movement struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	Type      MovementType `json:"movement_type"`
	Quantity  int64        `json:"quantity"`
	Reference *string      `json:"reference,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Transaction reference tokens as written by the order, purchasing and
// adjustment workflows, e.g. "ORD-20260314-0042" or "TXN-8F3A21".
var referencePattern = regexp.MustCompile(`\b(?:ORD|TXN|PO|ADJ)-[A-Za-z0-9][A-Za-z0-9-]*\b`)

// TransactionRef returns the movement's transaction reference: the structured
// field when set, otherwise the first token extracted from legacy notes, or
// nil when neither yields one.
func (m Movement) TransactionRef() *string {
	if m.Reference != nil && *m.Reference != "" {
		return m.Reference
	}
	return ExtractReference(m.Notes)
}

// ExtractReference parses a transaction-reference token out of free-text
// notes. It returns nil when no token is present.
func ExtractReference(notes string) *string {
	token := referencePattern.FindString(notes)
	if token == "" {
		return nil
	}
	return &token
}
