package service

// RelationHasher derives the stable, unguessable public hash of an agency/store pair.
type RelationHasher interface {
	Derive(agencyID, storeID string) string
}
