package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nautica-prime/internal/core/domain"
	"nautica-prime/internal/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCadastra_PasswordMismatchRejectedLocally(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, _ := newTestStores(t)
	svc := NewClienteService(apiclient.New(srv.URL, time.Second), clientes)

	input := CadastroInput{Nome: "Ana", Email: "ana@example.com", Senha: "senha12345"}
	err := svc.Cadastra(context.Background(), input, "outra-coisa")

	assert.ErrorIs(t, err, domain.ErrSenhasDiferentes)
	assert.Zero(t, requests.Load(), "no network call expected")
}

func TestCadastra_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c9","nome":"Ana"}`))
	}))
	defer srv.Close()

	clientes, _ := newTestStores(t)
	svc := NewClienteService(apiclient.New(srv.URL, time.Second), clientes)

	input := CadastroInput{Nome: "Ana", Email: "ana@example.com", Cidade: "Santos", Senha: "senha12345"}
	err := svc.Cadastra(context.Background(), input, "senha12345")

	require.NoError(t, err)
	// Registration does not log the customer in
	assert.False(t, svc.Atual().Autenticado())
}

func TestCadastra_ConflictSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"erro":"E-mail já cadastrado"}`))
	}))
	defer srv.Close()

	clientes, _ := newTestStores(t)
	svc := NewClienteService(apiclient.New(srv.URL, time.Second), clientes)

	input := CadastroInput{Nome: "Ana", Email: "ana@example.com", Senha: "senha12345"}
	err := svc.Cadastra(context.Background(), input, "senha12345")

	require.Error(t, err)
	assert.Equal(t, "E-mail já cadastrado", err.Error())
}

func TestLogin_StoresIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clientes/login", r.URL.Path)
		w.Write([]byte(`{"id":"c1","nome":"Ana","email":"ana@example.com","cidade":"Santos","token":"tok-abc"}`))
	}))
	defer srv.Close()

	clientes, _ := newTestStores(t)
	svc := NewClienteService(apiclient.New(srv.URL, time.Second), clientes)

	cliente, err := svc.Login(context.Background(), "ana@example.com", "senha12345")

	require.NoError(t, err)
	assert.Equal(t, "c1", cliente.ID)
	assert.True(t, svc.Atual().Autenticado())
	assert.Equal(t, "tok-abc", clientes.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"erro":"E-mail ou senha incorretos"}`))
	}))
	defer srv.Close()

	clientes, _ := newTestStores(t)
	svc := NewClienteService(apiclient.New(srv.URL, time.Second), clientes)

	_, err := svc.Login(context.Background(), "ana@example.com", "errada")

	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
	assert.False(t, svc.Atual().Autenticado())
}

func TestLogout_ClearsOnlyCustomerSession(t *testing.T) {
	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	loginAdmin(t, admins)

	svc := NewClienteService(apiclient.New("http://localhost", time.Second), clientes)
	require.NoError(t, svc.Logout())

	assert.False(t, clientes.Atual().Autenticado())
	assert.True(t, admins.Atual().Autenticado())
}
