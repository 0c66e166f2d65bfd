package models

import (
	"time"

	"gorm.io/gorm"
)

// Marca represents the marcas table
type Marca struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"uniqueIndex;size:60;not null" json:"nome"`
}

func (Marca) TableName() string {
	return "marcas"
}

// Embarcacao represents the embarcacoes table
type Embarcacao struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Modelo     string         `gorm:"size:100;not null" json:"modelo"`
	Ano        int            `gorm:"not null" json:"ano"`
	Preco      float64        `gorm:"not null" json:"preco"`
	Motor      string         `gorm:"size:50" json:"motor"`
	KmHoras    string         `gorm:"size:30" json:"km_horas"`
	Foto       string         `gorm:"size:255" json:"foto"`
	Acessorios string         `gorm:"type:text" json:"acessorios"`
	Destaque   bool           `gorm:"default:false" json:"destaque"`
	Vendida    bool           `gorm:"default:false" json:"vendida"`
	MarcaID    uint           `gorm:"index;not null" json:"marcaId"`
	Marca      *Marca         `gorm:"foreignKey:MarcaID" json:"marca,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Embarcacao) TableName() string {
	return "embarcacoes"
}

// Cliente represents the clientes table
type Cliente struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Nome      string         `gorm:"size:100;not null" json:"nome"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Cidade    string         `gorm:"size:80" json:"cidade"`
	Senha     string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// Admin represents the admins table
type Admin struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Nome      string         `gorm:"size:100;not null" json:"nome"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Senha     string         `gorm:"size:255;not null" json:"-"`
	Nivel     int            `gorm:"default:1" json:"nivel"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

// Proposta represents the propostas table
type Proposta struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	ClienteID      string      `gorm:"index;size:36;not null" json:"clienteId"`
	EmbarcacaoID   uint        `gorm:"index;not null" json:"embarcacaoId"`
	Descricao      string      `gorm:"type:text;not null" json:"descricao"`
	Status         string      `gorm:"size:20;default:'PENDENTE'" json:"status"`
	Resposta       *string     `gorm:"type:text" json:"resposta"`
	ValorNegociado *float64    `json:"valor_negociado,omitempty"`
	AdminID        *string     `gorm:"size:36" json:"adminId,omitempty"`
	Cliente        *Cliente    `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Embarcacao     *Embarcacao `gorm:"foreignKey:EmbarcacaoID" json:"embarcacao,omitempty"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Proposta) TableName() string {
	return "propostas"
}

// AutoMigrate creates or updates the stub schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Marca{},
		&Embarcacao{},
		&Cliente{},
		&Admin{},
		&Proposta{},
	)
}
