package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"unicode/utf8"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/apiclient"
	"nautica-prime/internal/session"
)

// MinDescricao is the minimum proposal description length
const MinDescricao = 10

// PropostaService handles proposal submission (customer side) and
// moderation (admin side)
type PropostaService struct {
	api      *apiclient.Client
	clientes *session.ClienteStore
	admins   *session.AdminStore

	// enviando guards the submission flow: at most one in-flight
	// proposal per service instance, overlapping attempts rejected
	enviando atomic.Bool
}

// NewPropostaService creates a new proposal service
func NewPropostaService(api *apiclient.Client, clientes *session.ClienteStore, admins *session.AdminStore) *PropostaService {
	return &PropostaService{
		api:      api,
		clientes: clientes,
		admins:   admins,
	}
}

// propostaInput is the submission payload
type propostaInput struct {
	ClienteID    string `json:"clienteId"`
	EmbarcacaoID int    `json:"embarcacaoId"`
	Descricao    string `json:"descricao"`
}

// Envia submits a proposal for one listing.
// Preconditions checked locally, without a network call: an
// authenticated customer and a description of at least MinDescricao
// characters. While a submission is in flight, further attempts fail
// with ErrEnvioEmAndamento (an informational notice, not an error
// condition). The in-flight flag is released on every outcome.
func (s *PropostaService) Envia(ctx context.Context, embarcacaoID int, descricao string) error {
	// 1. Only an authenticated customer can submit
	cliente := s.clientes.Atual()
	if !cliente.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	// 2. Local description validation
	if utf8.RuneCountInString(descricao) < MinDescricao {
		return domain.ErrDescricaoCurta
	}

	// 3. Reject overlapping submissions instead of queueing them
	if !s.enviando.CompareAndSwap(false, true) {
		return domain.ErrEnvioEmAndamento
	}
	defer s.enviando.Store(false)

	// 4. Submit
	input := propostaInput{
		ClienteID:    cliente.ID,
		EmbarcacaoID: embarcacaoID,
		Descricao:    descricao,
	}

	res, err := s.api.Post(ctx, "/propostas", input, cliente.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code != 201 {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	log.Printf("✅ Proposta enviada para embarcação %d", embarcacaoID)
	return nil
}

// Enviando reports whether a submission is currently in flight
func (s *PropostaService) Enviando() bool {
	return s.enviando.Load()
}

// Minhas lists the current customer's proposals
func (s *PropostaService) Minhas(ctx context.Context) ([]domain.Proposta, error) {
	cliente := s.clientes.Atual()
	if !cliente.Autenticado() {
		return nil, domain.ErrNaoAutenticado
	}

	res, err := s.api.Get(ctx, "/propostas/cliente/"+cliente.ID, cliente.Token)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code == 401 {
		return nil, domain.ErrSessaoExpirada
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Proposta](res.Body), nil
}

// Todas lists every proposal (admin back-office)
func (s *PropostaService) Todas(ctx context.Context) ([]domain.Proposta, error) {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return nil, domain.ErrNaoAutenticado
	}

	res, err := s.api.Get(ctx, "/propostas", admin.Token)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code == 401 {
		return nil, domain.ErrSessaoExpirada
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Proposta](res.Body), nil
}

// Responde records an admin response on a proposal
func (s *PropostaService) Responde(ctx context.Context, propostaID int, resposta string) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	payload := map[string]string{"resposta": resposta}
	res, err := s.api.Put(ctx, fmt.Sprintf("/propostas/%d/responder", propostaID), payload, admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}

// aceitaInput is the accept payload
type aceitaInput struct {
	ValorNegociado float64 `json:"valor_negociado"`
	AdminID        string  `json:"adminId"`
}

// Aceita accepts a proposal, registering the negotiated sale price.
// A proposal already in a final status produces no request, and the
// price must be positive.
func (s *PropostaService) Aceita(ctx context.Context, proposta domain.Proposta, valorNegociado float64) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}
	if domain.StatusTerminal(proposta.Status) {
		return domain.ErrStatusTerminal
	}
	if valorNegociado <= 0 {
		return domain.ErrValorInvalido
	}

	input := aceitaInput{ValorNegociado: valorNegociado, AdminID: admin.ID}
	res, err := s.api.Put(ctx, fmt.Sprintf("/propostas/%d/aceitar", proposta.ID), input, admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}

	log.Printf("✅ Proposta %d aceita (R$ %.2f)", proposta.ID, valorNegociado)
	return nil
}

// Rejeita rejects a proposal. A proposal already in a final status
// produces no request.
func (s *PropostaService) Rejeita(ctx context.Context, proposta domain.Proposta) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}
	if domain.StatusTerminal(proposta.Status) {
		return domain.ErrStatusTerminal
	}

	payload := map[string]string{"status": domain.StatusRejeitada}
	res, err := s.api.Patch(ctx, fmt.Sprintf("/propostas/%d/status", proposta.ID), payload, admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}

// Exclui removes a proposal permanently. The confirmation step
// happens at the presentation boundary, before this call.
func (s *PropostaService) Exclui(ctx context.Context, propostaID int) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	res, err := s.api.Delete(ctx, fmt.Sprintf("/propostas/%d", propostaID), admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}
