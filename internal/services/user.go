package services

import (
	"github.com/NathanMcCormack/Quiz-Web-Game-FYP2025/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	UserName string
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserService) Create(input UserInput) (*models.User, error) {
	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Age:      input.Age,
		UserName: input.UserName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update overwrites every field; the password is re-hashed by the model's
// BeforeSave hook.
func (s *UserService) Update(id uint, input UserInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Password = input.Password
	user.Age = input.Age
	user.UserName = input.UserName

	if err := s.db.Save(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *UserService) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
