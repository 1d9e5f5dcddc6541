package auth

import (
	"errors"
	"time"

	"github.com/hardikidentixweb/inquiry-master/internal/models"
	"github.com/hardikidentixweb/inquiry-master/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and issues a signed token carrying the user's
// role claim. Failed attempts sleep briefly to blunt brute forcing.
func (s *Service) Login(username, password, ip string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(3 * time.Second)
		return "", nil, errWrongPassword
	}

	now := time.Now()
	u.LastLoginTime = &now
	u.LastLoginIP = ip
	_ = s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	}).Error

	token, err := jwt.Sign(u.ID, u.Role, jwt.DefaultTTL)
	return token, &u, err
}

// Register creates a staff account. The very first account becomes the
// admin; everyone after that starts as a regular user.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var existing int64
	if err := s.db.Model(&models.UserModel{}).
		Where("username = ?", dto.Username).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errUsernameTaken
	}

	var total int64
	if err := s.db.Model(&models.UserModel{}).Count(&total).Error; err != nil {
		return nil, err
	}
	role := models.RoleUser
	if total == 0 {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{
		Username: dto.Username,
		Password: string(hash),
		Name:     name,
		Email:    dto.Email,
		Role:     role,
	}
	return &u, s.db.Create(&u).Error
}

// GetByID returns one user profile.
func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
