package repository

import (
	"context"
	"errors"

	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/store"
)

const contactsCollection = "contacts"

// ContactRepository defines the data access operations for contacts.
type ContactRepository interface {
	// GetByID fetches a contact. Returns nil, nil when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Contact, error)

	// List returns all contacts.
	List(ctx context.Context) ([]models.Contact, error)

	// ListByHouse returns the contacts whose houseIds set contains houseID.
	ListByHouse(ctx context.Context, houseID string) ([]models.Contact, error)

	// Create stores a new contact, generating an id when c.ID is empty.
	Create(ctx context.Context, c *models.Contact) error

	// Put creates or replaces the contact under c.ID.
	Put(ctx context.Context, c *models.Contact) error

	// Update merges fields into the stored document.
	Update(ctx context.Context, id string, fields map[string]interface{}) error

	// Delete removes the contact.
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	store *store.Store
}

// NewContactRepository creates a new instance of ContactRepository.
func NewContactRepository(s *store.Store) ContactRepository {
	return &contactRepository{store: s}
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	doc, err := r.store.GetByID(ctx, contactsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var c models.Contact
	if err := decode(store.Document{ID: id, Doc: doc}, &c); err != nil {
		return nil, err
	}
	c.ID = id
	return &c, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.Contact, error) {
	docs, err := r.store.ListAll(ctx, contactsCollection)
	if err != nil {
		return nil, err
	}
	return decodeContacts(docs)
}

func (r *contactRepository) ListByHouse(ctx context.Context, houseID string) ([]models.Contact, error) {
	docs, err := r.store.ListWhereContains(ctx, contactsCollection, "houseIds", houseID)
	if err != nil {
		return nil, err
	}
	return decodeContacts(docs)
}

func (r *contactRepository) Create(ctx context.Context, c *models.Contact) error {
	if c.ID == "" {
		c.ID = store.NewDocumentID()
	}
	doc, err := encode(c)
	if err != nil {
		return err
	}
	return r.store.Insert(ctx, contactsCollection, c.ID, doc)
}

func (r *contactRepository) Put(ctx context.Context, c *models.Contact) error {
	doc, err := encode(c)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, contactsCollection, c.ID, doc)
}

func (r *contactRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Patch(ctx, contactsCollection, id, fields)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, contactsCollection, id)
}

func decodeContacts(docs []store.Document) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0, len(docs))
	for _, d := range docs {
		var c models.Contact
		if err := decode(d, &c); err != nil {
			return nil, err
		}
		c.ID = d.ID
		contacts = append(contacts, c)
	}
	return contacts, nil
}
