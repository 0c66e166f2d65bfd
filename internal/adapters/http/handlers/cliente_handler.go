package handlers

import (
	"errors"
	"strings"

	"nautica-prime/internal/adapters/persistence/models"
	"nautica-prime/internal/adapters/persistence/repositories"
	"nautica-prime/internal/config"
	"nautica-prime/internal/pkg/jwt"
	"nautica-prime/internal/pkg/password"
	"nautica-prime/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteHandler handles customer endpoints
type ClienteHandler struct {
	clienteRepo *repositories.ClienteRepository
	cfg         *config.Config
}

// NewClienteHandler creates a new cliente handler
func NewClienteHandler(clienteRepo *repositories.ClienteRepository, cfg *config.Config) *ClienteHandler {
	return &ClienteHandler{
		clienteRepo: clienteRepo,
		cfg:         cfg,
	}
}

// ClienteRegisterRequest represents a registration request body
type ClienteRegisterRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Cidade string `json:"cidade"`
	Senha  string `json:"senha"`
}

// ClienteLoginRequest represents a login request body
type ClienteLoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Register handles customer registration
func (h *ClienteHandler) Register(c *fiber.Ctx) error {
	var req ClienteRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	// Validate required fields
	var issues []response.Issue
	if strings.TrimSpace(req.Nome) == "" {
		issues = append(issues, response.Issue{Message: "Nome é obrigatório"})
	}
	if !strings.Contains(req.Email, "@") {
		issues = append(issues, response.Issue{Message: "E-mail inválido"})
	}
	if !password.Validate(req.Senha) {
		issues = append(issues, response.Issue{Message: "Senha deve ter, no mínimo, 8 caracteres"})
	}
	if len(issues) > 0 {
		return response.ErroIssues(c, issues...)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := h.clienteRepo.ExistsByEmail(c.Context(), email)
	if err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar cliente")
	}
	if exists {
		return response.Conflict(c, "E-mail já cadastrado")
	}

	hashed, err := password.Hash(req.Senha)
	if err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar cliente")
	}

	cliente := &models.Cliente{
		ID:     uuid.New().String(),
		Nome:   strings.TrimSpace(req.Nome),
		Email:  email,
		Cidade: strings.TrimSpace(req.Cidade),
		Senha:  hashed,
	}

	if err := h.clienteRepo.Create(c.Context(), cliente); err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar cliente")
	}

	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Login authenticates a customer and returns the identity with a bearer token
func (h *ClienteHandler) Login(c *fiber.Ctx) error {
	var req ClienteLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	cliente, err := h.clienteRepo.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "E-mail ou senha incorretos")
		}
		return response.InternalServerError(c, "Erro ao realizar login")
	}

	if !password.Verify(req.Senha, cliente.Senha) {
		return response.Unauthorized(c, "E-mail ou senha incorretos")
	}

	token, err := jwt.GenerateToken(cliente.ID, cliente.Nome, jwt.RoleCliente, h.cfg.JWT.Secret, h.cfg.JWT.TokenHours)
	if err != nil {
		return response.InternalServerError(c, "Erro ao gerar token")
	}

	return c.JSON(fiber.Map{
		"id":     cliente.ID,
		"nome":   cliente.Nome,
		"email":  cliente.Email,
		"cidade": cliente.Cidade,
		"token":  token,
	})
}

// List returns all customers (admin only)
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.clienteRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao listar clientes")
	}
	return c.JSON(clientes)
}
