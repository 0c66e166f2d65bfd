package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"nautica-prime/internal/adapters/http/middleware"
	"nautica-prime/internal/adapters/persistence/models"
	"nautica-prime/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	// In-memory SQLite lives per connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))

	// Minimal fixture catalog
	marca := models.Marca{Nome: "Focker"}
	require.NoError(t, db.Create(&marca).Error)
	require.NoError(t, db.Create(&models.Embarcacao{
		Modelo: "Focker 272 GTO", Ano: 2022, Preco: 489000,
		Motor: "Mercury 300 HP", KmHoras: "120", Destaque: true, MarcaID: marca.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Embarcacao{
		Modelo: "Focker 215", Ano: 2020, Preco: 198000,
		Motor: "Yamaha 115 HP", KmHoras: "260", MarcaID: marca.ID,
	}).Error)

	cfg := &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: "segredo-de-teste", TokenHours: 1},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	Setup(app, db, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, token string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// registerAndLogin creates a customer account and returns its id and token
func registerAndLogin(t *testing.T, app *fiber.App, email string) (string, string) {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/clientes", fiber.Map{
		"nome": "Ana", "email": email, "cidade": "Santos", "senha": "senha12345",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/clientes/login", fiber.Map{
		"email": email, "senha": "senha12345",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.ID, out.Token
}

// bootstrapAdmin creates the first admin and returns its bearer token
func bootstrapAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/admins/primeiro-acesso", fiber.Map{
		"nome": "Carla", "email": "carla@example.com", "senha": "senha12345",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/admins/login", fiber.Map{
		"email": "carla@example.com", "senha": "senha12345",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
		Nivel int    `json:"nivel"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, 5, out.Nivel)
	return out.Token
}

func TestEmbarcacoes_ListIsBareArray(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/embarcacoes", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var itens []map[string]any
	require.NoError(t, json.Unmarshal(body, &itens))
	assert.Len(t, itens, 2)
}

func TestDestaques_UsesEmbarcacoesEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/embarcacoes/destaques", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Embarcacoes []map[string]any `json:"embarcacoes"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Embarcacoes, 1)
	assert.Equal(t, "Focker 272 GTO", out.Embarcacoes[0]["modelo"])
}

func TestPesquisa_UsesDataEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/embarcacoes/pesquisa/focker", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Data, 2)
}

func TestPesquisa_NumericTermActsAsPriceCeiling(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/embarcacoes/pesquisa/200000", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Focker 215", out.Data[0]["modelo"])
}

func TestEmbarcacoes_WritesRequireAdminToken(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{"modelo": "Novo Barco", "ano": 2024, "preco": 100000, "marcaId": 1}

	resp, _ := doJSON(t, app, http.MethodPost, "/embarcacoes", payload, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// A customer token is not enough
	_, clienteToken := registerAndLogin(t, app, "ana@example.com")
	resp, _ = doJSON(t, app, http.MethodPost, "/embarcacoes", payload, clienteToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken := bootstrapAdmin(t, app)
	resp, body := doJSON(t, app, http.MethodPost, "/embarcacoes", payload, adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), "Novo Barco")
}

func TestAdminExiste(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, http.MethodGet, "/admins/existe", nil, "")
	assert.JSONEq(t, `{"existeAdmin":false}`, string(body))

	bootstrapAdmin(t, app)

	_, body = doJSON(t, app, http.MethodGet, "/admins/existe", nil, "")
	assert.JSONEq(t, `{"existeAdmin":true}`, string(body))
}

func TestPrimeiroAcesso_RejectedOnceAdminExists(t *testing.T) {
	app := newTestApp(t)
	bootstrapAdmin(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/admins/primeiro-acesso", fiber.Map{
		"nome": "Outro", "email": "outro@example.com", "senha": "senha12345",
	}, "")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "erro")
}

func TestProposta_ShortDescriptionReturnsIssues(t *testing.T) {
	app := newTestApp(t)
	_, token := registerAndLogin(t, app, "ana@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/propostas", fiber.Map{
		"embarcacaoId": 1, "descricao": "curta",
	}, token)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out struct {
		Erro struct {
			Issues []struct {
				Message string `json:"message"`
			} `json:"issues"`
		} `json:"erro"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Erro.Issues, 1)
	assert.Contains(t, out.Erro.Issues[0].Message, "10 caracteres")
}

func TestProposta_FullModerationFlow(t *testing.T) {
	app := newTestApp(t)
	clienteID, clienteToken := registerAndLogin(t, app, "ana@example.com")
	adminToken := bootstrapAdmin(t, app)

	// Customer submits
	resp, body := doJSON(t, app, http.MethodPost, "/propostas", fiber.Map{
		"embarcacaoId": 1, "descricao": "tenho muito interesse nesta embarcação",
	}, clienteToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var proposta struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &proposta))
	assert.Equal(t, "PENDENTE", proposta.Status)

	// Customer sees it in their listing
	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/propostas/cliente/%s", clienteID), nil, clienteToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var minhas []map[string]any
	require.NoError(t, json.Unmarshal(body, &minhas))
	assert.Len(t, minhas, 1)

	// Admin responds
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/propostas/%d/responder", proposta.ID), fiber.Map{
		"resposta": "Podemos negociar o valor",
	}, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Admin accepts with a negotiated value
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/propostas/%d/aceitar", proposta.ID), fiber.Map{
		"valor_negociado": 450000,
	}, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ACEITA"`)

	// Accepting marks the listing as sold
	resp, body = doJSON(t, app, http.MethodGet, "/embarcacoes/1", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"vendida":true`)

	// Terminal status admits no further transition
	resp, _ = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/propostas/%d/status", proposta.ID), fiber.Map{
		"status": "REJEITADA",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProposta_CustomerCannotReadOthers(t *testing.T) {
	app := newTestApp(t)
	_, anaToken := registerAndLogin(t, app, "ana@example.com")
	brunoID, _ := registerAndLogin(t, app, "bruno@example.com")

	resp, _ := doJSON(t, app, http.MethodGet, fmt.Sprintf("/propostas/cliente/%s", brunoID), nil, anaToken)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDashboard_Gerais(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "ana@example.com")

	resp, body := doJSON(t, app, http.MethodGet, "/dashboard/gerais", nil, "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Clientes    int `json:"clientes"`
		Embarcacoes int `json:"embarcacoes"`
		Propostas   int `json:"propostas"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Clientes)
	assert.Equal(t, 2, out.Embarcacoes)
}

func TestClientes_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "ana@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/clientes/login", fiber.Map{
		"email": "ana@example.com", "senha": "errada",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "E-mail ou senha incorretos")
}
