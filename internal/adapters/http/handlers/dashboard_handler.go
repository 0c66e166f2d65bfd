package handlers

import (
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles aggregate metric endpoints
type DashboardHandler struct {
	clienteRepo    *repositories.ClienteRepository
	embarcacaoRepo *repositories.EmbarcacaoRepository
	propostaRepo   *repositories.PropostaRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	clienteRepo *repositories.ClienteRepository,
	embarcacaoRepo *repositories.EmbarcacaoRepository,
	propostaRepo *repositories.PropostaRepository,
) *DashboardHandler {
	return &DashboardHandler{
		clienteRepo:    clienteRepo,
		embarcacaoRepo: embarcacaoRepo,
		propostaRepo:   propostaRepo,
	}
}

// Gerais returns the overall entity counts
func (h *DashboardHandler) Gerais(c *fiber.Ctx) error {
	clientes, err := h.clienteRepo.Count(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar painel")
	}
	embarcacoes, err := h.embarcacaoRepo.Count(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar painel")
	}
	propostas, err := h.propostaRepo.Count(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar painel")
	}

	return c.JSON(fiber.Map{
		"clientes":    clientes,
		"embarcacoes": embarcacoes,
		"propostas":   propostas,
	})
}

// EmbarcacoesMarca returns listing counts grouped by brand
func (h *DashboardHandler) EmbarcacoesMarca(c *fiber.Ctx) error {
	contagens, err := h.embarcacaoRepo.CountPorMarca(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar gráfico de marcas")
	}
	return c.JSON(contagens)
}

// ClientesCidade returns customer counts grouped by city
func (h *DashboardHandler) ClientesCidade(c *fiber.Ctx) error {
	contagens, err := h.clienteRepo.CountPorCidade(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar gráfico de cidades")
	}
	return c.JSON(contagens)
}
