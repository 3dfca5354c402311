package entity

import "time"

// User representa un usuario de la aplicación (negocio de un solo dueño).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
