package repositories

import (
	"context"
	"strconv"

	"nautica-prime/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// MarcaRepository handles marca data access
type MarcaRepository struct {
	db *gorm.DB
}

// NewMarcaRepository creates a new marca repository
func NewMarcaRepository(db *gorm.DB) *MarcaRepository {
	return &MarcaRepository{db: db}
}

// List lists all marcas ordered by name
func (r *MarcaRepository) List(ctx context.Context) ([]*models.Marca, error) {
	var marcas []*models.Marca
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&marcas).Error
	return marcas, err
}

// GetByID gets a marca by ID
func (r *MarcaRepository) GetByID(ctx context.Context, id uint) (*models.Marca, error) {
	var marca models.Marca
	err := r.db.WithContext(ctx).First(&marca, id).Error
	return &marca, err
}

// Create creates a new marca
func (r *MarcaRepository) Create(ctx context.Context, marca *models.Marca) error {
	return r.db.WithContext(ctx).Create(marca).Error
}

// EmbarcacaoRepository handles embarcacao data access
type EmbarcacaoRepository struct {
	db *gorm.DB
}

// NewEmbarcacaoRepository creates a new embarcacao repository
func NewEmbarcacaoRepository(db *gorm.DB) *EmbarcacaoRepository {
	return &EmbarcacaoRepository{db: db}
}

// List lists all embarcacoes with their marca preloaded
func (r *EmbarcacaoRepository) List(ctx context.Context) ([]*models.Embarcacao, error) {
	var embarcacoes []*models.Embarcacao
	err := r.db.WithContext(ctx).Preload("Marca").Order("id ASC").Find(&embarcacoes).Error
	return embarcacoes, err
}

// Destaques lists featured embarcacoes only
func (r *EmbarcacaoRepository) Destaques(ctx context.Context) ([]*models.Embarcacao, error) {
	var embarcacoes []*models.Embarcacao
	err := r.db.WithContext(ctx).Preload("Marca").
		Where("destaque = ?", true).
		Order("id ASC").
		Find(&embarcacoes).Error
	return embarcacoes, err
}

// Pesquisa searches by model, marca or motor substring.
// A numeric term also matches the exact year or acts as a price ceiling.
func (r *EmbarcacaoRepository) Pesquisa(ctx context.Context, termo string) ([]*models.Embarcacao, error) {
	var embarcacoes []*models.Embarcacao
	like := "%" + termo + "%"

	query := r.db.WithContext(ctx).Preload("Marca").
		Joins("LEFT JOIN marcas ON marcas.id = embarcacoes.marca_id").
		Where("embarcacoes.modelo LIKE ? OR marcas.nome LIKE ? OR embarcacoes.motor LIKE ?", like, like, like)

	if n, err := strconv.ParseFloat(termo, 64); err == nil {
		query = r.db.WithContext(ctx).Preload("Marca").
			Joins("LEFT JOIN marcas ON marcas.id = embarcacoes.marca_id").
			Where("embarcacoes.modelo LIKE ? OR marcas.nome LIKE ? OR embarcacoes.motor LIKE ? OR embarcacoes.ano = ? OR embarcacoes.preco <= ?",
				like, like, like, int(n), n)
	}

	err := query.Order("embarcacoes.id ASC").Find(&embarcacoes).Error
	return embarcacoes, err
}

// GetByID gets an embarcacao by ID with its marca preloaded
func (r *EmbarcacaoRepository) GetByID(ctx context.Context, id uint) (*models.Embarcacao, error) {
	var embarcacao models.Embarcacao
	err := r.db.WithContext(ctx).Preload("Marca").First(&embarcacao, id).Error
	return &embarcacao, err
}

// Create creates a new embarcacao
func (r *EmbarcacaoRepository) Create(ctx context.Context, embarcacao *models.Embarcacao) error {
	return r.db.WithContext(ctx).Create(embarcacao).Error
}

// Update updates an embarcacao
func (r *EmbarcacaoRepository) Update(ctx context.Context, embarcacao *models.Embarcacao) error {
	return r.db.WithContext(ctx).Save(embarcacao).Error
}

// Delete soft deletes an embarcacao
func (r *EmbarcacaoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Embarcacao{}, id).Error
}

// Count counts all embarcacoes
func (r *EmbarcacaoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Embarcacao{}).Count(&count).Error
	return count, err
}

// ContagemPorMarca groups embarcacao counts per marca
type ContagemPorMarca struct {
	Marca string `json:"marca"`
	Num   int64  `json:"num"`
}

// CountPorMarca counts embarcacoes grouped by marca name
func (r *EmbarcacaoRepository) CountPorMarca(ctx context.Context) ([]*ContagemPorMarca, error) {
	var contagens []*ContagemPorMarca
	err := r.db.WithContext(ctx).Model(&models.Embarcacao{}).
		Select("marcas.nome AS marca, COUNT(embarcacoes.id) AS num").
		Joins("JOIN marcas ON marcas.id = embarcacoes.marca_id").
		Group("marcas.nome").
		Order("num DESC").
		Scan(&contagens).Error
	return contagens, err
}
