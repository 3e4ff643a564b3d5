package models

import "time"

type StoreSettings struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	StoreName     string    `json:"store_name" gorm:"not null;default:'Sneakerhub'"`
	StoreEmail    string    `json:"store_email"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func DefaultStoreSettings() *StoreSettings {
	return &StoreSettings{
		StoreName:     "Sneakerhub",
		StoreEmail:    "contact@sneakerhub.com",
		ContactNumber: "+1234567890",
		Address:       "123 Sneaker Street",
	}
}
