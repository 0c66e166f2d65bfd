package handlers

import (
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MarcaHandler handles brand endpoints
type MarcaHandler struct {
	marcaRepo *repositories.MarcaRepository
}

// NewMarcaHandler creates a new marca handler
func NewMarcaHandler(marcaRepo *repositories.MarcaRepository) *MarcaHandler {
	return &MarcaHandler{marcaRepo: marcaRepo}
}

// List returns all brands as a bare array
func (h *MarcaHandler) List(c *fiber.Ctx) error {
	marcas, err := h.marcaRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar marcas")
	}
	return c.JSON(marcas)
}
