package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactHasAddresses is the referential guard: a contact with
	// dependent addresses cannot be deleted.
	ErrContactHasAddresses = errors.New("contact cannot be deleted because it is still used by an address")
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func toContactResponse(contact *models.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  optional(contact.LastName),
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// checkContactMustExist resolves a contact by owner and id in one query.
// A contact that exists under a different user resolves as not found.
func (s *ContactService) checkContactMustExist(username string, contactID uint) (*models.Contact, error) {
	var contact models.Contact
	err := s.db.Where("username = ? AND id = ?", username, contactID).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return &contact, nil
}

func (s *ContactService) Create(user *models.User, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact := models.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return toContactResponse(&contact), nil
}

func (s *ContactService) Get(user *models.User, contactID uint) (*dto.ContactResponse, error) {
	contact, err := s.checkContactMustExist(user.Username, contactID)
	if err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

func (s *ContactService) Update(user *models.User, contactID uint, req *dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.checkContactMustExist(user.Username, contactID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = req.LastName
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}

	if err := s.db.Save(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return toContactResponse(contact), nil
}

// Remove deletes the contact unless addresses still reference it. The
// count and the delete are separate statements; no transaction joins
// them, so a concurrent address insert between the two can slip past the
// guard.
func (s *ContactService) Remove(user *models.User, contactID uint) (*dto.ContactResponse, error) {
	contact, err := s.checkContactMustExist(user.Username, contactID)
	if err != nil {
		return nil, err
	}

	var addresses int64
	if err := s.db.Model(&models.Address{}).Where("contact_id = ?", contactID).Count(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to count addresses: %w", err)
	}
	if addresses > 0 {
		return nil, ErrContactHasAddresses
	}

	if err := s.db.Delete(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}

	return toContactResponse(contact), nil
}

// searchFilters builds the optional substring predicates as GORM scopes;
// each filter is added only when its field is non-empty. Kept separate
// from Search so the composition is testable on its own.
func searchFilters(req *dto.SearchContactRequest) []func(*gorm.DB) *gorm.DB {
	var filters []func(*gorm.DB) *gorm.DB

	if req.Name != "" {
		pattern := "%" + req.Name + "%"
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("(first_name LIKE ? OR last_name LIKE ?)", pattern, pattern)
		})
	}
	if req.Email != "" {
		pattern := "%" + req.Email + "%"
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("email LIKE ?", pattern)
		})
	}
	if req.Phone != "" {
		pattern := "%" + req.Phone + "%"
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("phone LIKE ?", pattern)
		})
	}

	return filters
}

// Search lists the caller's contacts matching every present filter, with
// skip/take pagination and a separate count over the same filter set.
// Results are ordered by id so repeated pages are stable.
func (s *ContactService) Search(user *models.User, req *dto.SearchContactRequest) ([]dto.ContactResponse, *dto.Paging, error) {
	if err := validation.Struct(req); err != nil {
		return nil, nil, err
	}

	filters := searchFilters(req)
	scoped := func() *gorm.DB {
		return s.db.Model(&models.Contact{}).
			Where("username = ?", user.Username).
			Scopes(filters...)
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	skip := (req.Page - 1) * req.Size

	var contacts []models.Contact
	if err := scoped().Order("id").Offset(skip).Limit(req.Size).Find(&contacts).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	responses := make([]dto.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *toContactResponse(&contacts[i])
	}

	paging := &dto.Paging{
		CurrentPage: req.Page,
		Size:        req.Size,
		TotalPage:   int(math.Ceil(float64(total) / float64(req.Size))),
	}

	return responses, paging, nil
}

// optional maps empty persisted values to absent response fields.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
