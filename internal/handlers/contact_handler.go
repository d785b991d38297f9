package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.contactService.Create(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	resp, err := h.contactService.Get(user, contactID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.contactService.Update(user, contactID, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.ContactResponse]{Data: resp})
}

func (h *ContactHandler) Remove(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	contactID, err := paramID(c, "contactId", "contact_id")
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.contactService.Remove(user, contactID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[bool]{Data: true})
}

// Search handles GET /contacts with optional name/email/phone substring
// filters and page/size pagination (defaults 1/10).
func (h *ContactHandler) Search(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	req := dto.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  c.QueryInt("page", 1),
		Size:  c.QueryInt("size", 10),
	}

	contacts, paging, err := h.contactService.Search(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[[]dto.ContactResponse]{Data: contacts, Paging: paging})
}
