package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/apiclient"
	"nautica-prime/internal/session"
)

// CatalogService drives the listing views and the admin boat CRUD
type CatalogService struct {
	api    *apiclient.Client
	admins *session.AdminStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(api *apiclient.Client, admins *session.AdminStore) *CatalogService {
	return &CatalogService{
		api:    api,
		admins: admins,
	}
}

// Destaques fetches the featured subset. The result replaces any
// previously displayed collection.
func (s *CatalogService) Destaques(ctx context.Context) ([]domain.Embarcacao, error) {
	res, err := s.api.Get(ctx, "/embarcacoes/destaques", "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Embarcacao](res.Body), nil
}

// Pesquisa fetches a server-side filtered result. Terms shorter than
// 2 characters are rejected locally, without a network call.
func (s *CatalogService) Pesquisa(ctx context.Context, termo string) ([]domain.Embarcacao, error) {
	if utf8.RuneCountInString(termo) < 2 {
		return nil, domain.ErrTermoCurto
	}

	res, err := s.api.Get(ctx, "/embarcacoes/pesquisa/"+termo, "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Embarcacao](res.Body), nil
}

// Todas fetches every listing (admin back-office view)
func (s *CatalogService) Todas(ctx context.Context) ([]domain.Embarcacao, error) {
	res, err := s.api.Get(ctx, "/embarcacoes", "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Embarcacao](res.Body), nil
}

// Detalhes fetches one listing. Any non-2xx answer is the not-found
// path.
func (s *CatalogService) Detalhes(ctx context.Context, id int) (*domain.Embarcacao, error) {
	res, err := s.api.Get(ctx, fmt.Sprintf("/embarcacoes/%d", id), "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, domain.ErrNotFound
	}

	var e domain.Embarcacao
	if err := json.Unmarshal(res.Body, &e); err != nil {
		return nil, fmt.Errorf("decode embarcacao: %w", err)
	}
	return &e, nil
}

// Marcas fetches the brand list
func (s *CatalogService) Marcas(ctx context.Context) ([]domain.Marca, error) {
	res, err := s.api.Get(ctx, "/marcas", "")
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return nil, errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return apiclient.List[domain.Marca](res.Body), nil
}

// EmbarcacaoInput is the payload for boat create/update operations
type EmbarcacaoInput struct {
	Modelo     string  `json:"modelo"`
	Ano        int     `json:"ano"`
	Preco      float64 `json:"preco"`
	KmHoras    string  `json:"km_horas"`
	Motor      string  `json:"motor"`
	Foto       string  `json:"foto"`
	Acessorios string  `json:"acessorios"`
	Destaque   bool    `json:"destaque"`
	MarcaID    int     `json:"marcaId"`
}

// Cadastra creates a listing (admin only)
func (s *CatalogService) Cadastra(ctx context.Context, input EmbarcacaoInput) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	res, err := s.api.Post(ctx, "/embarcacoes", input, admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if res.Code != 201 {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}

// Atualiza updates a listing (admin only)
func (s *CatalogService) Atualiza(ctx context.Context, id int, input EmbarcacaoInput) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	res, err := s.api.Put(ctx, fmt.Sprintf("/embarcacoes/%d", id), input, admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}

// Exclui deletes a listing (admin only). The confirmation step
// happens at the presentation boundary, before this call.
func (s *CatalogService) Exclui(ctx context.Context, id int) error {
	admin := s.admins.Atual()
	if !admin.Autenticado() {
		return domain.ErrNaoAutenticado
	}

	res, err := s.api.Delete(ctx, fmt.Sprintf("/embarcacoes/%d", id), admin.Token)
	if err != nil {
		return fmt.Errorf("%w (%v)", domain.ErrConexao, err)
	}
	if !res.OK {
		return errors.New(apiclient.ErrorMessage(res.Body, res.Code))
	}
	return nil
}
