package repository

import (
	"github.com/cyber3201/foodApp/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Addresses").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(fields).Error
}

// AddAddress appends an address; a new default unsets the previous one.
func (r *UserRepository) AddAddress(addr *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ?", addr.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(addr).Error
	})
}
