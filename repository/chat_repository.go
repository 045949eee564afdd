package repository

import (
	"github.com/cyber3201/foodApp/entity"
	"gorm.io/gorm"
)

type ChatRepository struct{ DB *gorm.DB }

func NewChatRepository(db *gorm.DB) *ChatRepository { return &ChatRepository{DB: db} }

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.DB.Create(msg).Error
}

// FindMessagesByUser returns the session history in submit order.
func (r *ChatRepository) FindMessagesByUser(userID uint) ([]entity.Message, error) {
	var msgs []entity.Message
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&msgs).Error
	return msgs, err
}
