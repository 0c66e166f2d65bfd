package domain

import (
	"strconv"
	"strings"
	"time"
)

// MarcaIndisponivel is the display placeholder used when a listing's
// nested brand is missing from the payload.
const MarcaIndisponivel = "Marca não disponível"

// Marca represents a boat brand
type Marca struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// Embarcacao represents a boat listing
type Embarcacao struct {
	ID         int       `json:"id"`
	Modelo     string    `json:"modelo"`
	Ano        int       `json:"ano"`
	Preco      float64   `json:"preco"`
	Motor      string    `json:"motor"`
	KmHoras    string    `json:"km_horas"`
	Foto       string    `json:"foto"`
	Acessorios string    `json:"acessorios"`
	Destaque   bool      `json:"destaque"`
	Vendida    bool      `json:"vendida"`
	MarcaID    int       `json:"marcaId"`
	Marca      *Marca    `json:"marca,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MarcaNome returns the brand name, with a deterministic placeholder
// when the backend omitted the nested brand
func (e *Embarcacao) MarcaNome() string {
	if e.Marca == nil || e.Marca.Nome == "" {
		return MarcaIndisponivel
	}
	return e.Marca.Nome
}

// HorasUso returns the usage hours for display. The backend stores
// km_horas as free text; numeric values are normalized, anything else
// is shown as-is
func (e *Embarcacao) HorasUso() string {
	raw := strings.TrimSpace(e.KmHoras)
	if raw == "" {
		return "0"
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return raw
}

// ListaAcessorios splits the comma-separated accessory field
func (e *Embarcacao) ListaAcessorios() []string {
	if strings.TrimSpace(e.Acessorios) == "" {
		return nil
	}
	parts := strings.Split(e.Acessorios, ",")
	itens := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			itens = append(itens, item)
		}
	}
	return itens
}

// Cliente represents a customer identity
type Cliente struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Cidade string `json:"cidade,omitempty"`
	Token  string `json:"token,omitempty"`
}

// Autenticado reports whether the identity can authorize writes.
// Identifier and token must both be present; a display name alone is
// never enough
func (c Cliente) Autenticado() bool {
	return c.ID != "" && c.Token != ""
}

// Admin represents an administrator identity
type Admin struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Nivel int    `json:"nivel,omitempty"`
	Token string `json:"token,omitempty"`
}

// Autenticado reports whether the admin identity can authorize writes
func (a Admin) Autenticado() bool {
	return a.ID != "" && a.Token != ""
}

// Proposal status values
const (
	StatusPendente   = "PENDENTE"
	StatusAceita     = "ACEITA"
	StatusRejeitada  = "REJEITADA"
	StatusRespondida = "RESPONDIDA"
)

// NormalizaStatus maps a raw status value onto the fixed enumeration,
// falling back to PENDENTE for unrecognized or absent values
func NormalizaStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case StatusAceita:
		return StatusAceita
	case StatusRejeitada:
		return StatusRejeitada
	case StatusRespondida:
		return StatusRespondida
	default:
		return StatusPendente
	}
}

// StatusTerminal reports whether a proposal status admits no further
// accept/reject transition
func StatusTerminal(status string) bool {
	s := NormalizaStatus(status)
	return s == StatusAceita || s == StatusRejeitada
}

// Proposta represents a purchase proposal made by a customer against
// one listing
type Proposta struct {
	ID             int         `json:"id"`
	ClienteID      string      `json:"clienteId"`
	EmbarcacaoID   int         `json:"embarcacaoId"`
	Descricao      string      `json:"descricao"`
	Status         string      `json:"status"`
	Resposta       string      `json:"resposta,omitempty"`
	ValorNegociado float64     `json:"valor_negociado,omitempty"`
	Cliente        *Cliente    `json:"cliente,omitempty"`
	Embarcacao     *Embarcacao `json:"embarcacao,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      *time.Time  `json:"updatedAt,omitempty"`
}

// StatusDisplay returns the proposal status normalized for display
func (p *Proposta) StatusDisplay() string {
	return NormalizaStatus(p.Status)
}

// DashboardGerais holds the general dashboard counters
type DashboardGerais struct {
	Clientes    int `json:"clientes"`
	Embarcacoes int `json:"embarcacoes"`
	Propostas   int `json:"propostas"`
}

// GraficoMarca is one slice of the boats-per-brand chart
type GraficoMarca struct {
	Marca string `json:"marca"`
	Num   int    `json:"num"`
}

// GraficoCidade is one slice of the customers-per-city chart
type GraficoCidade struct {
	Cidade string `json:"cidade"`
	Num    int    `json:"num"`
}
