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
	"nautica-prime/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores(t *testing.T) (*session.ClienteStore, *session.AdminStore) {
	t.Helper()
	clientes, err := session.NewClienteStore(t.TempDir())
	require.NoError(t, err)
	admins, err := session.NewAdminStore(t.TempDir())
	require.NoError(t, err)
	return clientes, admins
}

func loginCliente(t *testing.T, clientes *session.ClienteStore) {
	t.Helper()
	require.NoError(t, clientes.Login(domain.Cliente{
		ID:    "c1",
		Nome:  "Ana",
		Email: "ana@example.com",
		Token: "cliente-token",
	}))
}

func loginAdmin(t *testing.T, admins *session.AdminStore) {
	t.Helper()
	require.NoError(t, admins.Login(domain.Admin{
		ID:    "a1",
		Nome:  "Carla",
		Email: "carla@example.com",
		Nivel: 5,
		Token: "admin-token",
	}))
}

func TestEnvia_RequiresAuthenticatedCustomer(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Envia(context.Background(), 1, "tenho muito interesse")

	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)
	assert.Zero(t, requests.Load(), "no network call expected")
}

func TestEnvia_ShortDescriptionRejectedLocally(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Envia(context.Background(), 1, "curta")

	assert.ErrorIs(t, err, domain.ErrDescricaoCurta)
	assert.Zero(t, requests.Load(), "no network call expected")
}

func TestEnvia_Success(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7,"status":"PENDENTE"}`))
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Envia(context.Background(), 3, "tenho interesse nesta embarcação")

	require.NoError(t, err)
	assert.Equal(t, "Bearer cliente-token", gotAuth)
	assert.False(t, svc.Enviando(), "flag released after success")
}

func TestEnvia_OverlappingSubmissionRejected(t *testing.T) {
	var requests atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		close(entered)
		<-release
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Minute), clientes, admins)

	done := make(chan error, 1)
	go func() {
		done <- svc.Envia(context.Background(), 1, "primeira proposta em andamento")
	}()

	<-entered // first submission is now in flight
	assert.True(t, svc.Enviando())

	err := svc.Envia(context.Background(), 1, "segunda proposta simultânea")
	assert.ErrorIs(t, err, domain.ErrEnvioEmAndamento)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), requests.Load(), "second attempt must not reach the server")
	assert.False(t, svc.Enviando())
}

func TestEnvia_FlagReleasedOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"erro":{"issues":[{"message":"Descrição deve ter, no mínimo, 10 caracteres"}]}}`))
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Envia(context.Background(), 1, "descrição longa o bastante")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erro de validação")
	assert.False(t, svc.Enviando(), "flag released after failure")
}

func TestEnvia_TransportFailureIsConexao(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Envia(context.Background(), 1, "descrição longa o bastante")

	assert.ErrorIs(t, err, domain.ErrConexao)
	assert.False(t, svc.Enviando())
}

func TestMinhas_ExpiredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"erro":"Token de acesso expirado"}`))
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	_, err := svc.Minhas(context.Background())

	assert.ErrorIs(t, err, domain.ErrSessaoExpirada)
}

func TestMinhas_NormalizesBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/propostas/cliente/c1", r.URL.Path)
		w.Write([]byte(`[{"id":1,"descricao":"quero ver de perto","status":"RESPONDIDA"}]`))
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginCliente(t, clientes)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	propostas, err := svc.Minhas(context.Background())

	require.NoError(t, err)
	require.Len(t, propostas, 1)
	assert.Equal(t, "RESPONDIDA", propostas[0].StatusDisplay())
}

func TestAceita_TerminalStatusProducesNoRequest(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginAdmin(t, admins)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Aceita(context.Background(), domain.Proposta{ID: 1, Status: domain.StatusAceita}, 1000)
	assert.ErrorIs(t, err, domain.ErrStatusTerminal)

	err = svc.Rejeita(context.Background(), domain.Proposta{ID: 1, Status: domain.StatusRejeitada})
	assert.ErrorIs(t, err, domain.ErrStatusTerminal)

	assert.Zero(t, requests.Load(), "no network call expected")
}

func TestAceita_RequiresPositiveValue(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginAdmin(t, admins)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Aceita(context.Background(), domain.Proposta{ID: 1, Status: domain.StatusPendente}, 0)

	assert.ErrorIs(t, err, domain.ErrValorInvalido)
	assert.Zero(t, requests.Load())
}

func TestAceita_SendsNegotiatedValueAndAdminID(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"id":9,"status":"ACEITA"}`))
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	loginAdmin(t, admins)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	err := svc.Aceita(context.Background(), domain.Proposta{ID: 9, Status: domain.StatusPendente}, 450000)

	require.NoError(t, err)
	assert.Equal(t, "/propostas/9/aceitar", gotPath)
	assert.Contains(t, gotBody, `"valor_negociado":450000`)
	assert.Contains(t, gotBody, `"adminId":"a1"`)
}

func TestTodas_RequiresAdmin(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	clientes, admins := newTestStores(t)
	svc := NewPropostaService(apiclient.New(srv.URL, time.Second), clientes, admins)

	_, err := svc.Todas(context.Background())

	assert.ErrorIs(t, err, domain.ErrNaoAutenticado)
	assert.Zero(t, requests.Load())
}
