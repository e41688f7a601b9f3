package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/homekeep/api/internal/logger"
	"github.com/homekeep/api/internal/models"
	"github.com/homekeep/api/internal/repository"
)

// ContactService defines the business logic for service contacts.
type ContactService interface {
	// ListContacts returns all contacts sorted by name.
	ListContacts(ctx context.Context) ([]models.Contact, error)

	// GetContact retrieves a contact. Returns ErrContactNotFound when absent.
	GetContact(ctx context.Context, id string) (*models.Contact, error)

	// ListHouseContacts returns the contacts whose houseIds set contains
	// the house. A house with no contacts yields an empty slice.
	ListHouseContacts(ctx context.Context, houseID string) ([]models.Contact, error)

	// CreateContact validates and stores a new contact.
	CreateContact(ctx context.Context, c *models.Contact) error

	// UpdateContact replaces the editable fields, including the full
	// houseIds set.
	UpdateContact(ctx context.Context, id string, c *models.Contact) (*models.Contact, error)

	// DeleteContact removes the contact.
	DeleteContact(ctx context.Context, id string) error
}

type contactService struct {
	contacts repository.ContactRepository
	sorter   *models.Sorter
	log      *logger.Logger
}

// NewContactService creates a new instance of ContactService.
func NewContactService(contacts repository.ContactRepository, sorter *models.Sorter, log *logger.Logger) ContactService {
	return &contactService{
		contacts: contacts,
		sorter:   sorter,
		log:      log,
	}
}

func (s *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		s.log.Error("Failed to list contacts", err, nil)
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	s.sorter.Contacts(contacts)
	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get contact", err, map[string]interface{}{"contact_id": id})
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

func (s *contactService) ListHouseContacts(ctx context.Context, houseID string) ([]models.Contact, error) {
	contacts, err := s.contacts.ListByHouse(ctx, houseID)
	if err != nil {
		s.log.Error("Failed to list house contacts", err, map[string]interface{}{"house_id": houseID})
		return nil, fmt.Errorf("failed to list house contacts: %w", err)
	}
	s.sorter.Contacts(contacts)
	return contacts, nil
}

// normalizeHouseIDs rewrites the membership set so it is always stored as an
// array with no blanks and no duplicates. Order of first appearance is kept.
func normalizeHouseIDs(c *models.Contact) {
	normalized := models.Contact{HouseIDs: []string{}}
	for _, id := range c.HouseIDs {
		if id == "" || normalized.ServesHouse(id) {
			continue
		}
		normalized.HouseIDs = append(normalized.HouseIDs, id)
	}
	c.HouseIDs = normalized.HouseIDs
}

func (s *contactService) CreateContact(ctx context.Context, c *models.Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	normalizeHouseIDs(c)

	if err := s.contacts.Create(ctx, c); err != nil {
		s.log.Error("Failed to create contact", err, map[string]interface{}{"name": c.Name})
		return fmt.Errorf("failed to create contact: %w", err)
	}

	s.log.Info("Contact created", map[string]interface{}{
		"contact_id": c.ID,
		"name":       c.Name,
	})
	return nil
}

func (s *contactService) UpdateContact(ctx context.Context, id string, c *models.Contact) (*models.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	normalizeHouseIDs(c)

	existing, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if existing == nil {
		return nil, ErrContactNotFound
	}

	fields := map[string]interface{}{
		"name":           c.Name,
		"role":           c.Role,
		"phone":          c.Phone,
		"emergencyPhone": c.EmergencyPhone,
		"email":          c.Email,
		"notes":          c.Notes,
		"houseIds":       c.HouseIDs,
	}
	if err := s.contacts.Update(ctx, id, fields); err != nil {
		s.log.Error("Failed to update contact", err, map[string]interface{}{"contact_id": id})
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	c.ID = id
	return c, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id string) error {
	existing, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}
	if existing == nil {
		return ErrContactNotFound
	}

	if err := s.contacts.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete contact", err, map[string]interface{}{"contact_id": id})
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.log.Info("Contact deleted", map[string]interface{}{"contact_id": id})
	return nil
}
