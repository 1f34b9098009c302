package models

// User backs the login boundary only; roles are admin, empleado or
// consultor. The core never reads this table.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"column:nombre;size:255;not null" json:"name"`
	Email        string `gorm:"column:correo;size:255;uniqueIndex;not null" json:"email"`
	Role         string `gorm:"column:rol;size:32;not null" json:"role"`
	PasswordHash string `gorm:"column:contrasena;size:255;not null" json:"-"`
}

func (User) TableName() string { return "usuarios" }
