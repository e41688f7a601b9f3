package repository

import (
	"encoding/json"
	"fmt"

	"github.com/homekeep/api/internal/store"
)

// decode unmarshals a stored document into target. Callers stamp the row key
// as the entity id afterwards; the row key wins over any id embedded in the
// document body.
func decode(d store.Document, target interface{}) error {
	if err := json.Unmarshal(d.Doc, target); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", d.ID, err)
	}
	return nil
}

// encode marshals an entity for storage.
func encode(entity interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}
