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

// Nivel granted to the admin created through first access
const primeiroAdminNivel = 5

// AdminHandler handles administrator endpoints
type AdminHandler struct {
	adminRepo *repositories.AdminRepository
	cfg       *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminRepo *repositories.AdminRepository, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// AdminLoginRequest represents an admin login request body
type AdminLoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// PrimeiroAcessoRequest represents the bootstrap admin request body
type PrimeiroAcessoRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login authenticates an administrator
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	admin, err := h.adminRepo.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "E-mail ou senha incorretos")
		}
		return response.InternalServerError(c, "Erro ao realizar login")
	}

	if !password.Verify(req.Senha, admin.Senha) {
		return response.Unauthorized(c, "E-mail ou senha incorretos")
	}

	token, err := jwt.GenerateToken(admin.ID, admin.Nome, jwt.RoleAdmin, h.cfg.JWT.Secret, h.cfg.JWT.TokenHours)
	if err != nil {
		return response.InternalServerError(c, "Erro ao gerar token")
	}

	return c.JSON(fiber.Map{
		"id":    admin.ID,
		"nome":  admin.Nome,
		"email": admin.Email,
		"nivel": admin.Nivel,
		"token": token,
	})
}

// Existe reports whether any admin has been registered yet
func (h *AdminHandler) Existe(c *fiber.Ctx) error {
	exists, err := h.adminRepo.Exists(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao verificar administradores")
	}
	return c.JSON(fiber.Map{"existeAdmin": exists})
}

// PrimeiroAcesso creates the first administrator account.
// Rejected once any admin already exists.
func (h *AdminHandler) PrimeiroAcesso(c *fiber.Ctx) error {
	exists, err := h.adminRepo.Exists(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Erro ao verificar administradores")
	}
	if exists {
		return response.Conflict(c, "Já existe um administrador cadastrado")
	}

	var req PrimeiroAcessoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

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

	hashed, err := password.Hash(req.Senha)
	if err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar administrador")
	}

	admin := &models.Admin{
		ID:    uuid.New().String(),
		Nome:  strings.TrimSpace(req.Nome),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Senha: hashed,
		Nivel: primeiroAdminNivel,
	}

	if err := h.adminRepo.Create(c.Context(), admin); err != nil {
		return response.InternalServerError(c, "Erro ao cadastrar administrador")
	}

	return c.Status(fiber.StatusCreated).JSON(admin)
}
