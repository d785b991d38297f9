package services

import (
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/validation"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressService struct {
	db       *gorm.DB
	contacts *ContactService
}

func NewAddressService(db *gorm.DB, contacts *ContactService) *AddressService {
	return &AddressService{db: db, contacts: contacts}
}

func toAddressResponse(address *models.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:         address.ID,
		Street:     optional(address.Street),
		City:       optional(address.City),
		Province:   optional(address.Province),
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}

// checkAddressMustExist looks the address up by contact id and address id
// in a single combined predicate. An address that exists under a
// different contact resolves as not found; the keys are never checked
// sequentially.
func (s *AddressService) checkAddressMustExist(contactID, addressID uint) (*models.Address, error) {
	var address models.Address
	err := s.db.Where("contact_id = ? AND id = ?", contactID, addressID).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}

func (s *AddressService) Create(user *models.User, contactID uint, req *dto.CreateAddressRequest) (*dto.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.checkContactMustExist(user.Username, contactID); err != nil {
		return nil, err
	}

	address := models.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.db.Create(&address).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	return toAddressResponse(&address), nil
}

func (s *AddressService) Get(user *models.User, contactID, addressID uint) (*dto.AddressResponse, error) {
	if _, err := s.contacts.checkContactMustExist(user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressMustExist(contactID, addressID)
	if err != nil {
		return nil, err
	}

	return toAddressResponse(address), nil
}

func (s *AddressService) List(user *models.User, contactID uint) ([]dto.AddressResponse, error) {
	if _, err := s.contacts.checkContactMustExist(user.Username, contactID); err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err := s.db.Where("contact_id = ?", contactID).Order("id").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	responses := make([]dto.AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = *toAddressResponse(&addresses[i])
	}
	return responses, nil
}

func (s *AddressService) Update(user *models.User, contactID, addressID uint, req *dto.UpdateAddressRequest) (*dto.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if _, err := s.contacts.checkContactMustExist(user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressMustExist(contactID, addressID)
	if err != nil {
		return nil, err
	}

	if req.Street != nil {
		address.Street = req.Street
	}
	if req.City != nil {
		address.City = req.City
	}
	if req.Province != nil {
		address.Province = req.Province
	}
	if req.Country != nil {
		address.Country = *req.Country
	}
	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}

	if err := s.db.Save(address).Error; err != nil {
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	return toAddressResponse(address), nil
}

func (s *AddressService) Remove(user *models.User, contactID, addressID uint) (*dto.AddressResponse, error) {
	if _, err := s.contacts.checkContactMustExist(user.Username, contactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressMustExist(contactID, addressID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(address).Error; err != nil {
		return nil, fmt.Errorf("failed to delete address: %w", err)
	}

	return toAddressResponse(address), nil
}
