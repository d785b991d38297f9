package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.addressService.Create(user, contactID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Get(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId", "address_id")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.addressService.Get(user, contactID, addressID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.AddressResponse]{Data: resp})
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.addressService.List(user, contactID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[[]dto.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId", "address_id")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.addressService.Update(user, contactID, addressID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.AddressResponse]{Data: resp})
}

func (h *AddressHandler) Remove(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	addressID, err := paramID(c, "addressId", "address_id")
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.addressService.Remove(user, contactID, addressID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[bool]{Data: true})
}
