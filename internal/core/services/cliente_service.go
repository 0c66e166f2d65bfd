package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/apiclient"
	"nautica-prime/internal/session"
)

// ClienteService handles customer registration and authentication
type ClienteService struct {
	api      *apiclient.Client
	clientes *session.ClienteStore
}

// NewClienteService creates a new customer service
func NewClienteService(api *apiclient.Client, clientes *session.ClienteStore) *ClienteService {
	return &ClienteService{
		api:      api,
		clientes: clientes,
	}
}

// CadastroInput is the payload for customer registration
type CadastroInput struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Cidade string `json:"cidade"`
	Senha  string `json:"senha"`
}

// Cadastra registers a new customer account
func (s *ClienteService) Cadastra(ctx context.Context, input CadastroInput, confirmaSenha string) error {
	// 1. Local validation, before any network call
	if input.Senha != confirmaSenha {
		return domain.ErrSenhasDiferentes
	}

	// 2. Create the account
	res, err := s.api.Post(ctx, "/clientes", input, "")
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code != 201 {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	log.Printf("✅ Cliente cadastrado: %s", input.Email)
	return nil
}

// Login authenticates a customer and stores the identity in the
// customer session slot
func (s *ClienteService) Login(ctx context.Context, email, senha string) (domain.Cliente, error) {
	payload := map[string]string{"email": email, "senha": senha}

	res, err := s.api.Post(ctx, "/clientes/login", payload, "")
	if err != nil {
		return domain.Cliente{}, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code != 200 {
		return domain.Cliente{}, domain.ErrCredenciaisInvalidas
	}

	var cliente domain.Cliente
	if err := json.Unmarshal(res.Body, &cliente); err != nil {
		return domain.Cliente{}, fmt.Errorf("decode cliente: %w", err)
	}

	if err := s.clientes.Login(cliente); err != nil {
		return domain.Cliente{}, err
	}

	log.Printf("✅ Cliente logado: %s", cliente.Email)
	return cliente, nil
}

// Logout clears the customer session. The admin session, if any, is
// untouched.
func (s *ClienteService) Logout() error {
	return s.clientes.Logout()
}

// Atual returns the current customer identity
func (s *ClienteService) Atual() domain.Cliente {
	return s.clientes.Atual()
}
