package services

import (
	"errors"
	"time"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/cyber3201/foodApp/utils"
	"gorm.io/gorm"
)

// AuthService issues session tokens for the demo's passwordless login: the
// user is found or created by email, nothing is verified.
type AuthService struct {
	Repo   *repository.UserRepository
	Secret string
	TTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, Secret: secret, TTL: ttl}
}

type LoginIn struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

func (s *AuthService) Login(in *LoginIn) (*entity.User, string, error) {
	u, err := s.Repo.FindByEmail(in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = &entity.User{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
		}
		if err := s.Repo.Create(u); err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	} else {
		// returning session refreshes the display name
		fields := map[string]interface{}{
			"first_name": in.FirstName,
			"last_name":  in.LastName,
		}
		if err := s.Repo.Updates(u.ID, fields); err != nil {
			return nil, "", err
		}
		u.FirstName, u.LastName = in.FirstName, in.LastName
	}

	token, err := utils.GenerateToken(u.ID, "user", s.Secret, s.TTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}

type UpdateMeIn struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Avatar    *string `json:"avatar"`
}

func (s *AuthService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	fields := map[string]interface{}{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Avatar != nil {
		fields["avatar"] = *in.Avatar
	}
	if len(fields) > 0 {
		if err := s.Repo.Updates(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(userID)
}

type AddressIn struct {
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (s *AuthService) AddAddress(userID uint, in *AddressIn) (*entity.Address, error) {
	addr := &entity.Address{
		Street:    in.Street,
		City:      in.City,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
		IsDefault: in.IsDefault,
		UserID:    userID,
	}
	if addr.ZipCode == "" {
		addr.ZipCode = "00000"
	}
	if addr.Country == "" {
		addr.Country = "Morocco"
	}
	if err := s.Repo.AddAddress(addr); err != nil {
		return nil, err
	}
	return addr, nil
}
