package services

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/botanika-shop/botanika-api/models"
)

// Work factor of 12 so stolen hashes stay expensive to brute force offline.
const bcryptCost = 12

var (
	validate         = validator.New()
	nomPattern       = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s\-'.]+$`)
	telephonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

type AuthService interface {
	Register(data models.RegisterData) (models.User, error)
	Login(email, password string) (models.User, string, error)
}

type authService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) AuthService { return &authService{db: db} }

// validateRegistration checks every field and returns the full list of
// violations instead of stopping at the first one.
func validateRegistration(data models.RegisterData) ValidationErrors {
	var errs ValidationErrors

	nom := strings.TrimSpace(data.Nom)
	if nom == "" {
		errs = append(errs, "Le nom est requis")
	} else {
		if validate.Var(nom, "min=2,max=100") != nil {
			errs = append(errs, "Le nom doit contenir entre 2 et 100 caractères")
		}
		if !nomPattern.MatchString(nom) {
			errs = append(errs, "Le nom contient des caractères non autorisés")
		}
	}

	email := strings.TrimSpace(data.Email)
	if email == "" {
		errs = append(errs, "L'email est requis")
	} else {
		if validate.Var(email, "email") != nil {
			errs = append(errs, "Format d'email invalide")
		}
		if validate.Var(email, "min=5,max=255") != nil {
			errs = append(errs, "L'email doit contenir entre 5 et 255 caractères")
		}
	}

	if data.Password == "" {
		errs = append(errs, "Le mot de passe est requis")
	} else {
		if len(data.Password) < 6 {
			errs = append(errs, "Le mot de passe doit contenir au moins 6 caractères")
		}
		if len(data.Password) > 255 {
			errs = append(errs, "Le mot de passe est trop long")
		}
	}

	adresse := strings.TrimSpace(data.Adresse)
	if adresse == "" {
		errs = append(errs, "L'adresse est requise")
	} else if validate.Var(adresse, "min=5,max=500") != nil {
		errs = append(errs, "L'adresse doit contenir entre 5 et 500 caractères")
	}

	telephone := strings.TrimSpace(data.Telephone)
	if telephone == "" {
		errs = append(errs, "Le téléphone est requis")
	} else {
		if !telephonePattern.MatchString(telephone) {
			errs = append(errs, "Format de téléphone invalide")
		}
		if validate.Var(telephone, "min=8,max=20") != nil {
			errs = append(errs, "Le téléphone doit contenir entre 8 et 20 caractères")
		}
	}

	return errs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(data models.RegisterData) (models.User, error) {
	if errs := validateRegistration(data); len(errs) > 0 {
		return models.User{}, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcryptCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Nom:       strings.TrimSpace(data.Nom),
		Email:     normalizeEmail(data.Email),
		Password:  string(hash),
		Adresse:   strings.TrimSpace(data.Adresse),
		Telephone: strings.TrimSpace(data.Telephone),
		Role:      "client",
	}
	// Uniqueness is left to the email index: a pre-check would race with a
	// concurrent registration of the same address.
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Login never tells the caller whether the email exists: an unknown email
// and a wrong password both come back as ErrInvalidCredentials.
func (s *authService) Login(email, password string) (models.User, string, error) {
	var user models.User
	err := s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func GenerateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"nom":     user.Nom,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
