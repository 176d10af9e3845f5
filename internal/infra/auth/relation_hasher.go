package auth

import (
	"encoding/base64"

	"golang.org/x/crypto/blake2b"

	"virtualcheck/config"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/errors"
)

const relationSeparator = "|"

// relationHasher derives relation hashes as keyed BLAKE2b-256 over "agency|store".
type relationHasher struct {
	key []byte
}

// NewRelationHasher builds the hasher from the configured relation secret.
func NewRelationHasher(cfg *config.Config) (service.RelationHasher, error) {
	return newRelationHasher(cfg.Relation.HashSecret)
}

func newRelationHasher(secret string) (*relationHasher, error) {
	if secret == "" {
		return nil, errors.New("relation hash secret must be provided")
	}

	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}

	// Fail at startup rather than on the first derivation.
	if _, err := blake2b.New256(key); err != nil {
		return nil, errors.Wrap(err, "invalid relation hash secret")
	}

	return &relationHasher{key: key}, nil
}

// Derive returns the unpadded base64url encoding of the keyed digest.
// The same pair and secret always produce the same hash.
func (h *relationHasher) Derive(agencyID, storeID string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		panic(err)
	}
	mac.Write([]byte(agencyID + relationSeparator + storeID))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
