package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Nom       string `json:"nom"`
	Email     string `json:"email" gorm:"uniqueIndex;size:255"`
	Password  string `json:"-"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Role      string `json:"role" gorm:"default:client"`
}

type RegisterData struct {
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
