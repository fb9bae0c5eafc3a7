package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer mints bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	Age              *int
	Weight           *float64
	Height           *float64
	Gender           models.Gender
	FitnessGoal      models.FitnessGoal
	DailyCalorieGoal *float64
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService struct {
	users  storage.UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users storage.UserStore, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	v := &ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "Name is required")
	}
	if in.Gender != "" && !in.Gender.Valid() {
		v.Add("gender", "Gender must be male, female or other")
	}
	if in.FitnessGoal != "" && !in.FitnessGoal.Valid() {
		v.Add("fitnessGoal", "Fitness goal is not recognised")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Name:             strings.TrimSpace(in.Name),
		Email:            normalizeEmail(in.Email),
		PasswordHash:     hash,
		Age:              in.Age,
		Weight:           in.Weight,
		Height:           in.Height,
		Gender:           in.Gender,
		FitnessGoal:      in.FitnessGoal,
		DailyCalorieGoal: models.DefaultDailyCalorieGoal,
	}
	if in.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *in.DailyCalorieGoal
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}
