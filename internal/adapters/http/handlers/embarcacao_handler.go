package handlers

import (
	"errors"
	"strings"

	"nautica-prime/internal/adapters/persistence/models"
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EmbarcacaoHandler handles catalog endpoints
type EmbarcacaoHandler struct {
	embarcacaoRepo *repositories.EmbarcacaoRepository
	marcaRepo      *repositories.MarcaRepository
}

// NewEmbarcacaoHandler creates a new embarcacao handler
func NewEmbarcacaoHandler(embarcacaoRepo *repositories.EmbarcacaoRepository, marcaRepo *repositories.MarcaRepository) *EmbarcacaoHandler {
	return &EmbarcacaoHandler{
		embarcacaoRepo: embarcacaoRepo,
		marcaRepo:      marcaRepo,
	}
}

// EmbarcacaoRequest represents a create/update request body
type EmbarcacaoRequest struct {
	Modelo     string  `json:"modelo"`
	Ano        int     `json:"ano"`
	Preco      float64 `json:"preco"`
	Motor      string  `json:"motor"`
	KmHoras    string  `json:"km_horas"`
	Foto       string  `json:"foto"`
	Acessorios string  `json:"acessorios"`
	Destaque   bool    `json:"destaque"`
	MarcaID    uint    `json:"marcaId"`
}

// List returns the full catalog as a bare array
func (h *EmbarcacaoHandler) List(c *fiber.Ctx) error {
	embarcacoes, err := h.embarcacaoRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar embarcações")
	}
	return c.JSON(embarcacoes)
}

// Destaques returns featured listings under the embarcacoes envelope
func (h *EmbarcacaoHandler) Destaques(c *fiber.Ctx) error {
	embarcacoes, err := h.embarcacaoRepo.Destaques(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar destaques")
	}
	return c.JSON(fiber.Map{"embarcacoes": embarcacoes})
}

// Pesquisa returns search results under the data envelope
func (h *EmbarcacaoHandler) Pesquisa(c *fiber.Ctx) error {
	termo := strings.TrimSpace(c.Params("termo"))
	if len([]rune(termo)) < 2 {
		return response.BadRequest(c, "Informe, no mínimo, 2 caracteres")
	}

	embarcacoes, err := h.embarcacaoRepo.Pesquisa(c.Context(), termo)
	if err != nil {
		return response.InternalServerError(c, "Erro ao pesquisar embarcações")
	}
	return c.JSON(fiber.Map{"data": embarcacoes})
}

// Get returns a single listing by ID
func (h *EmbarcacaoHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "ID inválido")
	}

	embarcacao, err := h.embarcacaoRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Embarcação não encontrada")
		}
		return response.InternalServerError(c, "Erro ao buscar embarcação")
	}
	return c.JSON(embarcacao)
}

// Create creates a new listing (admin only)
func (h *EmbarcacaoHandler) Create(c *fiber.Ctx) error {
	var req EmbarcacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if issues := h.validate(&req); len(issues) > 0 {
		return response.ErroIssues(c, issues...)
	}

	if _, err := h.marcaRepo.GetByID(c.Context(), req.MarcaID); err != nil {
		return response.BadRequest(c, "Marca não encontrada")
	}

	embarcacao := &models.Embarcacao{
		Modelo:     strings.TrimSpace(req.Modelo),
		Ano:        req.Ano,
		Preco:      req.Preco,
		Motor:      strings.TrimSpace(req.Motor),
		KmHoras:    strings.TrimSpace(req.KmHoras),
		Foto:       strings.TrimSpace(req.Foto),
		Acessorios: strings.TrimSpace(req.Acessorios),
		Destaque:   req.Destaque,
		MarcaID:    req.MarcaID,
	}

	if err := h.embarcacaoRepo.Create(c.Context(), embarcacao); err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar embarcação")
	}

	created, err := h.embarcacaoRepo.GetByID(c.Context(), embarcacao.ID)
	if err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar embarcação")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update updates an existing listing (admin only)
func (h *EmbarcacaoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "ID inválido")
	}

	embarcacao, err := h.embarcacaoRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Embarcação não encontrada")
		}
		return response.InternalServerError(c, "Erro ao buscar embarcação")
	}

	var req EmbarcacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	if issues := h.validate(&req); len(issues) > 0 {
		return response.ErroIssues(c, issues...)
	}

	if req.MarcaID != embarcacao.MarcaID {
		if _, err := h.marcaRepo.GetByID(c.Context(), req.MarcaID); err != nil {
			return response.BadRequest(c, "Marca não encontrada")
		}
	}

	embarcacao.Modelo = strings.TrimSpace(req.Modelo)
	embarcacao.Ano = req.Ano
	embarcacao.Preco = req.Preco
	embarcacao.Motor = strings.TrimSpace(req.Motor)
	embarcacao.KmHoras = strings.TrimSpace(req.KmHoras)
	embarcacao.Foto = strings.TrimSpace(req.Foto)
	embarcacao.Acessorios = strings.TrimSpace(req.Acessorios)
	embarcacao.Destaque = req.Destaque
	embarcacao.MarcaID = req.MarcaID
	embarcacao.Marca = nil

	if err := h.embarcacaoRepo.Update(c.Context(), embarcacao); err != nil {
		return response.InternalServerError(c, "Erro ao atualizar embarcação")
	}

	updated, err := h.embarcacaoRepo.GetByID(c.Context(), embarcacao.ID)
	if err != nil {
		return response.InternalServerError(c, "Erro ao atualizar embarcação")
	}
	return c.JSON(updated)
}

// Delete removes a listing (admin only)
func (h *EmbarcacaoHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "ID inválido")
	}

	if _, err := h.embarcacaoRepo.GetByID(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Embarcação não encontrada")
		}
		return response.InternalServerError(c, "Erro ao buscar embarcação")
	}

	if err := h.embarcacaoRepo.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Erro ao excluir embarcação")
	}
	return c.JSON(fiber.Map{"mensagem": "Embarcação excluída com sucesso"})
}

func (h *EmbarcacaoHandler) validate(req *EmbarcacaoRequest) []response.Issue {
	var issues []response.Issue
	if strings.TrimSpace(req.Modelo) == "" {
		issues = append(issues, response.Issue{Message: "Modelo é obrigatório"})
	}
	if req.Ano < 1900 {
		issues = append(issues, response.Issue{Message: "Ano inválido"})
	}
	if req.Preco <= 0 {
		issues = append(issues, response.Issue{Message: "Preço deve ser maior que zero"})
	}
	if req.MarcaID == 0 {
		issues = append(issues, response.Issue{Message: "Marca é obrigatória"})
	}
	return issues
}
