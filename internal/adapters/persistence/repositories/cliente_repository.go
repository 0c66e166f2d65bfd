package repositories

import (
	"context"

	"nautica-prime/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ClienteRepository handles cliente data access
type ClienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository creates a new cliente repository
func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

// Create creates a new cliente
func (r *ClienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

// GetByID gets a cliente by ID
func (r *ClienteRepository) GetByID(ctx context.Context, id string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cliente).Error
	return &cliente, err
}

// GetByEmail gets a cliente by email
func (r *ClienteRepository) GetByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&cliente).Error
	return &cliente, err
}

// ExistsByEmail checks if a cliente exists by email
func (r *ClienteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List lists all clientes ordered by name
func (r *ClienteRepository) List(ctx context.Context) ([]*models.Cliente, error) {
	var clientes []*models.Cliente
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

// Count counts all clientes
func (r *ClienteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).Count(&count).Error
	return count, err
}

// ContagemPorCidade groups cliente counts per city
type ContagemPorCidade struct {
	Cidade string `json:"cidade"`
	Num    int64  `json:"num"`
}

// CountPorCidade counts clientes grouped by city
func (r *ClienteRepository) CountPorCidade(ctx context.Context) ([]*ContagemPorCidade, error) {
	var contagens []*ContagemPorCidade
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).
		Select("cidade, COUNT(id) AS num").
		Where("cidade <> ''").
		Group("cidade").
		Order("num DESC").
		Scan(&contagens).Error
	return contagens, err
}
