package handlers

import (
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.UserResponse]{Data: resp})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.UserResponse]{Data: resp})
}

func (h *UserHandler) Current(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.UserResponse]{Data: h.userService.Current(user)})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.userService.Update(user, &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[*dto.UserResponse]{Data: resp})
}

// Logout handles DELETE /users/current: clears the stored token.
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.userService.Logout(user); err != nil {
		return writeError(c, err)
	}

	return c.JSON(dto.WebResponse[bool]{Data: true})
}
