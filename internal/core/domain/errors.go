package domain

import "errors"

// Common domain errors. Messages are shown to the user as-is, so they
// stay in the product language.
var (
	ErrNotFound       = errors.New("registro não encontrado")
	ErrNaoAutenticado = errors.New("você precisa estar logado")
	ErrSessaoExpirada = errors.New("sessão expirada, faça login novamente")
	ErrConexao        = errors.New("erro de conexão, verifique se o backend está rodando")
)

// Catalog errors
var (
	ErrTermoCurto = errors.New("informe, no mínimo, 2 caracteres")
)

// Customer / admin account errors
var (
	ErrSenhasDiferentes     = errors.New("senha e confirmação precisam ser iguais")
	ErrSenhaCurta           = errors.New("a senha deve ter pelo menos 8 caracteres")
	ErrCredenciaisInvalidas = errors.New("login ou senha incorretos")
)

// Proposal errors
var (
	ErrDescricaoCurta   = errors.New("a descrição deve ter pelo menos 10 caracteres")
	ErrEnvioEmAndamento = errors.New("aguarde, sua proposta está sendo enviada")
	ErrValorInvalido    = errors.New("valor inválido")
	ErrStatusTerminal   = errors.New("a proposta já possui status final")
)
