package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Service struct {
	repo StaffRepository
}

func NewService(repo StaffRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(name, email, password, role string) (*Staff, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	if role != RoleManager && role != RoleServer {
		return nil, errors.New("role must be MANAGER or SERVER")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	staff := &Staff{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.repo.Save(staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*Staff, error) {
	staff, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(staff.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return staff, nil
}
