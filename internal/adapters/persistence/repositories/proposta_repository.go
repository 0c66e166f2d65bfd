package repositories

import (
	"context"
	"time"

	"nautica-prime/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// PropostaRepository handles proposta data access
type PropostaRepository struct {
	db *gorm.DB
}

// NewPropostaRepository creates a new proposta repository
func NewPropostaRepository(db *gorm.DB) *PropostaRepository {
	return &PropostaRepository{db: db}
}

// Create creates a new proposta
func (r *PropostaRepository) Create(ctx context.Context, proposta *models.Proposta) error {
	return r.db.WithContext(ctx).Create(proposta).Error
}

// GetByID gets a proposta by ID with cliente and embarcacao preloaded
func (r *PropostaRepository) GetByID(ctx context.Context, id uint) (*models.Proposta, error) {
	var proposta models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Embarcacao").
		Preload("Embarcacao.Marca").
		First(&proposta, id).Error
	return &proposta, err
}

// ListAll lists all propostas for moderation, newest first
func (r *PropostaRepository) ListAll(ctx context.Context) ([]*models.Proposta, error) {
	var propostas []*models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Embarcacao").
		Preload("Embarcacao.Marca").
		Order("created_at DESC").
		Find(&propostas).Error
	return propostas, err
}

// ListByCliente lists a cliente's propostas, newest first
func (r *PropostaRepository) ListByCliente(ctx context.Context, clienteID string) ([]*models.Proposta, error) {
	var propostas []*models.Proposta
	err := r.db.WithContext(ctx).
		Preload("Embarcacao").
		Preload("Embarcacao.Marca").
		Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&propostas).Error
	return propostas, err
}

// Update updates a proposta
func (r *PropostaRepository) Update(ctx context.Context, proposta *models.Proposta) error {
	return r.db.WithContext(ctx).Save(proposta).Error
}

// Delete deletes a proposta
func (r *PropostaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Proposta{}, id).Error
}

// Count counts all propostas
func (r *PropostaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Proposta{}).Count(&count).Error
	return count, err
}

// CountPendentesAntesDe counts propostas still PENDENTE created before the cutoff
func (r *PropostaRepository) CountPendentesAntesDe(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Proposta{}).
		Where("status = ? AND created_at < ?", "PENDENTE", cutoff).
		Count(&count).Error
	return count, err
}
