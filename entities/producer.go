package entities

import "time"

// Producer is a rural landowner identified by a CPF or CNPJ.
type Producer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	TaxID string `gorm:"not null;uniqueIndex" json:"tax_id"` // cpf|cnpj

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
