package inventory

import "github.com/google/uuid"

// MovementGroup collects movements that belong to one transaction for one
// product. Primary is the business movement; Related holds the subordinate
// movements sharing the reference.
type MovementGroup struct {
	Primary        Movement   `json:"primary"`
	TransactionRef *string    `json:"transaction_ref"`
	Related        []Movement `json:"related"`
}

type groupKey struct {
	productID uuid.UUID
	reference string
}

// GroupRelatedMovements groups movements sharing both a product and an
// extracted transaction reference. Within a group the first business-type
// movement becomes primary; when none is a business type, the first movement
// does. Movements without a reference, or whose reference matches nothing
// else for the same product, come out as singleton groups. Output preserves
// first-seen input order, so identical input yields identical output.
func GroupRelatedMovements(movements []Movement) []MovementGroup {
	buckets := make(map[groupKey][]Movement)
	keyOrder := make([]groupKey, 0)
	singletons := make([]MovementGroup, 0)

	for _, m := range movements {
		ref := m.TransactionRef()
		if ref == nil {
			singletons = append(singletons, MovementGroup{
				Primary: m,
				Related: []Movement{},
			})
			continue
		}
		key := groupKey{productID: m.ProductID, reference: *ref}
		if _, seen := buckets[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], m)
	}

	groups := make([]MovementGroup, 0, len(keyOrder)+len(singletons))
	for _, key := range keyOrder {
		bucket := buckets[key]
		ref := key.reference
		primary := electPrimary(bucket)

		related := make([]Movement, 0, len(bucket)-1)
		for _, m := range bucket {
			if m.ID != primary.ID {
				related = append(related, m)
			}
		}
		groups = append(groups, MovementGroup{
			Primary:        primary,
			TransactionRef: &ref,
			Related:        related,
		})
	}

	return append(groups, singletons...)
}

func electPrimary(bucket []Movement) Movement {
	for _, m := range bucket {
		if m.Type.IsBusiness() {
			return m
		}
	}
	return bucket[0]
}
