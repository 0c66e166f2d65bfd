package handlers

import (
	"errors"
	"strings"
	"unicode/utf8"

	"nautica-prime/internal/adapters/persistence/models"
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/pkg/jwt"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Proposal status values
const (
	statusPendente   = "PENDENTE"
	statusAceita     = "ACEITA"
	statusRejeitada  = "REJEITADA"
	statusRespondida = "RESPONDIDA"
)

// minDescricao is the minimum proposal description length in runes
const minDescricao = 10

// PropostaHandler handles proposal endpoints
type PropostaHandler struct {
	propostaRepo   *repositories.PropostaRepository
	embarcacaoRepo *repositories.EmbarcacaoRepository
}

// NewPropostaHandler creates a new proposta handler
func NewPropostaHandler(propostaRepo *repositories.PropostaRepository, embarcacaoRepo *repositories.EmbarcacaoRepository) *PropostaHandler {
	return &PropostaHandler{
		propostaRepo:   propostaRepo,
		embarcacaoRepo: embarcacaoRepo,
	}
}

// PropostaRequest represents a proposal creation request body
type PropostaRequest struct {
	ClienteID    string `json:"clienteId"`
	EmbarcacaoID uint   `json:"embarcacaoId"`
	Descricao    string `json:"descricao"`
}

// ResponderRequest represents a moderation response body
type ResponderRequest struct {
	Resposta string `json:"resposta"`
}

// AceitarRequest represents an acceptance body
type AceitarRequest struct {
	ValorNegociado float64 `json:"valor_negociado"`
	AdminID        string  `json:"adminId"`
}

// StatusRequest represents a status transition body
type StatusRequest struct {
	Status string `json:"status"`
}

// Create registers a new proposal for the authenticated customer
func (h *PropostaHandler) Create(c *fiber.Ctx) error {
	var req PropostaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	// The proposal always belongs to the token's actor
	actorID, _ := c.Locals("actorID").(string)
	if actorID == "" {
		return response.Unauthorized(c, "Não autenticado")
	}
	if req.ClienteID != "" && req.ClienteID != actorID {
		return response.Forbidden(c, "Proposta deve pertencer ao cliente autenticado")
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Descricao)) < minDescricao {
		return response.ErroIssues(c, response.Issue{
			Message: "Descrição deve ter, no mínimo, 10 caracteres",
		})
	}

	embarcacao, err := h.embarcacaoRepo.GetByID(c.Context(), req.EmbarcacaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Embarcação não encontrada")
		}
		return response.InternalServerError(c, "Erro ao registrar proposta")
	}
	if embarcacao.Vendida {
		return response.BadRequest(c, "Embarcação já vendida")
	}

	proposta := &models.Proposta{
		ClienteID:    actorID,
		EmbarcacaoID: req.EmbarcacaoID,
		Descricao:    strings.TrimSpace(req.Descricao),
		Status:       statusPendente,
	}

	if err := h.propostaRepo.Create(c.Context(), proposta); err != nil {
		return response.InternalServerError(c, "Erro ao registrar proposta")
	}

	created, err := h.propostaRepo.GetByID(c.Context(), proposta.ID)
	if err != nil {
		return response.InternalServerError(c, "Erro ao registrar proposta")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListByCliente returns the authenticated customer's proposals
func (h *PropostaHandler) ListByCliente(c *fiber.Ctx) error {
	clienteID := c.Params("clienteId")

	// A customer only sees their own proposals; admins see anyone's
	actorID, _ := c.Locals("actorID").(string)
	role, _ := c.Locals("role").(string)
	if role == jwt.RoleCliente && actorID != clienteID {
		return response.Forbidden(c, "Você não tem permissão para acessar este recurso")
	}

	propostas, err := h.propostaRepo.ListByCliente(c.Context(), clienteID)
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar propostas")
	}
	return c.JSON(propostas)
}

// ListAll returns every proposal for moderation (admin only)
func (h *PropostaHandler) ListAll(c *fiber.Ctx) error {
	propostas, err := h.propostaRepo.ListAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar propostas")
	}
	return c.JSON(propostas)
}

// Responder records an admin response, setting status RESPONDIDA
func (h *PropostaHandler) Responder(c *fiber.Ctx) error {
	proposta, ok, err := h.byID(c)
	if !ok {
		return err
	}

	var req ResponderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	resposta := strings.TrimSpace(req.Resposta)
	if resposta == "" {
		return response.BadRequest(c, "Resposta é obrigatória")
	}

	if isTerminal(proposta.Status) {
		return response.BadRequest(c, "Proposta já finalizada")
	}

	proposta.Resposta = &resposta
	proposta.Status = statusRespondida

	if err := h.propostaRepo.Update(c.Context(), proposta); err != nil {
		return response.InternalServerError(c, "Erro ao responder proposta")
	}
	return c.JSON(proposta)
}

// Aceitar accepts a proposal, recording the negotiated value and
// marking the listing as sold
func (h *PropostaHandler) Aceitar(c *fiber.Ctx) error {
	proposta, ok, err := h.byID(c)
	if !ok {
		return err
	}

	var req AceitarRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}
	if req.ValorNegociado <= 0 {
		return response.BadRequest(c, "Valor negociado deve ser maior que zero")
	}

	if isTerminal(proposta.Status) {
		return response.BadRequest(c, "Proposta já finalizada")
	}

	adminID, _ := c.Locals("actorID").(string)
	if req.AdminID != "" {
		adminID = req.AdminID
	}

	proposta.Status = statusAceita
	proposta.ValorNegociado = &req.ValorNegociado
	proposta.AdminID = &adminID

	if err := h.propostaRepo.Update(c.Context(), proposta); err != nil {
		return response.InternalServerError(c, "Erro ao aceitar proposta")
	}

	// Accepting closes the sale
	if embarcacao, err := h.embarcacaoRepo.GetByID(c.Context(), proposta.EmbarcacaoID); err == nil {
		embarcacao.Vendida = true
		embarcacao.Marca = nil
		if err := h.embarcacaoRepo.Update(c.Context(), embarcacao); err != nil {
			return response.InternalServerError(c, "Erro ao aceitar proposta")
		}
	}

	return c.JSON(proposta)
}

// Status transitions a proposal's status (admin only)
func (h *PropostaHandler) Status(c *fiber.Ctx) error {
	proposta, ok, err := h.byID(c)
	if !ok {
		return err
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	switch status {
	case statusPendente, statusAceita, statusRejeitada, statusRespondida:
	default:
		return response.BadRequest(c, "Status inválido")
	}

	if isTerminal(proposta.Status) {
		return response.BadRequest(c, "Proposta já finalizada")
	}

	proposta.Status = status
	if err := h.propostaRepo.Update(c.Context(), proposta); err != nil {
		return response.InternalServerError(c, "Erro ao atualizar status")
	}
	return c.JSON(proposta)
}

// Delete removes a proposal (admin only)
func (h *PropostaHandler) Delete(c *fiber.Ctx) error {
	proposta, ok, err := h.byID(c)
	if !ok {
		return err
	}

	if err := h.propostaRepo.Delete(c.Context(), proposta.ID); err != nil {
		return response.InternalServerError(c, "Erro ao excluir proposta")
	}
	return c.JSON(fiber.Map{"mensagem": "Proposta excluída com sucesso"})
}

// byID loads the proposal from the route param. When it returns
// ok=false the error response has already been written.
func (h *PropostaHandler) byID(c *fiber.Ctx) (*models.Proposta, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, false, response.BadRequest(c, "ID inválido")
	}

	proposta, err := h.propostaRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, response.NotFound(c, "Proposta não encontrada")
		}
		return nil, false, response.InternalServerError(c, "Erro ao buscar proposta")
	}
	return proposta, true, nil
}

func isTerminal(status string) bool {
	return status == statusAceita || status == statusRejeitada
}
