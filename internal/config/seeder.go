package config

import (
	"log"

	"nautica-prime/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedMarcas(); err != nil {
		return err
	}
	if err := s.seedEmbarcacoes(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedMarcas seeds the catalog brands
func (s *Seeder) seedMarcas() error {
	var count int64
	s.db.Model(&models.Marca{}).Count(&count)
	if count > 0 {
		return nil // Marcas already seeded
	}

	marcas := []models.Marca{
		{Nome: "Azimut"},
		{Nome: "Bayliner"},
		{Nome: "Fibrafort"},
		{Nome: "Focker"},
		{Nome: "Intermarine"},
		{Nome: "Phantom"},
		{Nome: "Schaefer"},
		{Nome: "Sea Ray"},
		{Nome: "Triton"},
		{Nome: "Ventura"},
	}

	if err := s.db.Create(&marcas).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d marcas", len(marcas))
	return nil
}

// seedEmbarcacoes seeds a small demo catalog
// This is for development/testing only
func (s *Seeder) seedEmbarcacoes() error {
	var count int64
	s.db.Model(&models.Embarcacao{}).Count(&count)
	if count > 0 {
		return nil // Catalog already seeded
	}

	var marcas []models.Marca
	if err := s.db.Order("id ASC").Find(&marcas).Error; err != nil {
		return err
	}
	if len(marcas) == 0 {
		log.Println("⚠️ Skipping embarcacao seed: no marcas found")
		return nil
	}

	porNome := make(map[string]uint, len(marcas))
	for _, m := range marcas {
		porNome[m.Nome] = m.ID
	}

	embarcacoes := []models.Embarcacao{
		{
			Modelo:     "Focker 272 GTO",
			Ano:        2022,
			Preco:      489000,
			Motor:      "Mercury 300 HP",
			KmHoras:    "120",
			Acessorios: "GPS, Sonda, Rádio VHF, Toldo",
			Destaque:   true,
			MarcaID:    porNome["Focker"],
		},
		{
			Modelo:     "Phantom 303",
			Ano:        2021,
			Preco:      620000,
			Motor:      "Volvo Penta D4 260 HP",
			KmHoras:    "340",
			Acessorios: "Ar condicionado, Gerador, Churrasqueira",
			Destaque:   true,
			MarcaID:    porNome["Phantom"],
		},
		{
			Modelo:     "Triton 380",
			Ano:        2023,
			Preco:      1150000,
			Motor:      "2x Mercruiser 6.2 350 HP",
			KmHoras:    "45",
			Acessorios: "Plataforma de popa, Som marinizado, Guincho elétrico",
			Destaque:   true,
			MarcaID:    porNome["Triton"],
		},
		{
			Modelo:     "Bayliner VR5",
			Ano:        2019,
			Preco:      285000,
			Motor:      "Mercury 150 HP",
			KmHoras:    "410",
			Acessorios: "Capota náutica, Rádio",
			MarcaID:    porNome["Bayliner"],
		},
		{
			Modelo:     "Sea Ray 290 Sundancer",
			Ano:        2018,
			Preco:      740000,
			Motor:      "2x Mercruiser 5.0 260 HP",
			KmHoras:    "580",
			Acessorios: "Cabine completa, Geladeira, Fogão",
			MarcaID:    porNome["Sea Ray"],
		},
		{
			Modelo:     "Fibrafort Focker 215",
			Ano:        2020,
			Preco:      198000,
			Motor:      "Yamaha 115 HP",
			KmHoras:    "260",
			Acessorios: "Sonda, Toldo",
			MarcaID:    porNome["Fibrafort"],
		},
	}

	if err := s.db.Create(&embarcacoes).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d embarcacoes", len(embarcacoes))
	return nil
}
