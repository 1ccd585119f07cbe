package specification

import (
	"gorm.io/gorm"
)

type CollaboratorEmail struct {
	Email string
}

func (s CollaboratorEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collaborators.email = ?", s.Email)
}
