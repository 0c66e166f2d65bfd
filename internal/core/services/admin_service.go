package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/apiclient"
	"nautica-prime/internal/session"
)

// MinSenhaAdmin is the minimum admin password length
const MinSenhaAdmin = 8

// PrimeiroAdminNivel is the access level assigned to the first admin
const PrimeiroAdminNivel = 5

// AdminService handles administrator authentication, the client list
// and the dashboard queries
type AdminService struct {
	api    *apiclient.Client
	admins *session.AdminStore
}

// NewAdminService creates a new admin service
func NewAdminService(api *apiclient.Client, admins *session.AdminStore) *AdminService {
	return &AdminService{
		api:    api,
		admins: admins,
	}
}

// Login authenticates an administrator and stores the identity (token
// included) in the admin session slot
func (s *AdminService) Login(ctx context.Context, email, senha string) (domain.Admin, error) {
	payload := map[string]string{"email": email, "senha": senha}

	res, err := s.api.Post(ctx, "/admins/login", payload, "")
	if err != nil {
		return domain.Admin{}, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code == 400 || res.Code == 401 {
		return domain.Admin{}, domain.ErrCredenciaisInvalidas
	}
	if res.Code != 200 {
		return domain.Admin{}, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	var admin domain.Admin
	if err := json.Unmarshal(res.Body, &admin); err != nil {
		return domain.Admin{}, fmt.Errorf("decode admin: %w", err)
	}

	if err := s.admins.Login(admin); err != nil {
		return domain.Admin{}, err
	}

	log.Printf("✅ Admin logado: %s", admin.Email)
	return admin, nil
}

// Logout clears the admin session. The customer session, if any, is
// untouched.
func (s *AdminService) Logout() error {
	return s.admins.Logout()
}

// Atual returns the current admin identity
func (s *AdminService) Atual() domain.Admin {
	return s.admins.Atual()
}

// existeResponse mirrors GET /admins/existe
type existeResponse struct {
	ExisteAdmin bool `json:"existeAdmin"`
}

// Existe reports whether any administrator account exists yet
func (s *AdminService) Existe(ctx context.Context) (bool, error) {
	res, err := s.api.Get(ctx, "/admins/existe", "")
	if err != nil {
		return false, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return false, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	var out existeResponse
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return false, fmt.Errorf("decode existe: %w", err)
	}
	return out.ExisteAdmin, nil
}

// primeiroAcessoInput is the first-admin bootstrap payload
type primeiroAcessoInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nivel int    `json:"nivel"`
}

// PrimeiroAcesso creates the first administrator account. Password
// confirmation and minimum length are checked locally.
func (s *AdminService) PrimeiroAcesso(ctx context.Context, nome, email, senha, confirmaSenha string) error {
	// 1. Local validation, before any network call
	if senha != confirmaSenha {
		return domain.ErrSenhasDiferentes
	}
	if utf8.RuneCountInString(senha) < MinSenhaAdmin {
		return domain.ErrSenhaCurta
	}

	// 2. Bootstrap the account
	input := primeiroAcessoInput{
		Nome:  nome,
		Email: email,
		Senha: senha,
		Nivel: PrimeiroAdminNivel,
	}

	res, err := s.api.Post(ctx, "/admins/primeiro-acesso", input, "")
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code != 201 {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	log.Printf("✅ Primeiro admin criado: %s", email)
	return nil
}

// Clientes lists every registered customer (admin only)
func (s *AdminService) Clientes(ctx context.Context) ([]domain.Cliente, error) {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return nil, domain.ErrNaoAutenticado
	}

	res, err := s.api.Get(ctx, "/clientes", admin.Token)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code == 401 {
		return nil, domain.ErrSessaoExpirada
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Cliente](res.Body), nil
}

// DashboardGerais fetches the general counters
func (s *AdminService) DashboardGerais(ctx context.Context) (domain.DashboardGerais, error) {
	res, err := s.api.Get(ctx, "/dashboard/gerais", "")
	if err != nil {
		return domain.DashboardGerais{}, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return domain.DashboardGerais{}, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	var out domain.DashboardGerais
	if err := json.Unmarshal(res.Body, &out); err != nil {
		return domain.DashboardGerais{}, fmt.Errorf("decode dashboard: %w", err)
	}
	return out, nil
}

// EmbarcacoesMarca fetches the boats-per-brand chart data
func (s *AdminService) EmbarcacoesMarca(ctx context.Context) ([]domain.GraficoMarca, error) {
	res, err := s.api.Get(ctx, "/dashboard/EmbarcacoesMarca", "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.GraficoMarca](res.Body), nil
}

// ClientesCidade fetches the customers-per-city chart data
func (s *AdminService) ClientesCidade(ctx context.Context) ([]domain.GraficoCidade, error) {
	res, err := s.api.Get(ctx, "/dashboard/clientesCidade", "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.GraficoCidade](res.Body), nil
}
