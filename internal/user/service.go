package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Service provides signup/signin logic on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)
	return s.repo.Create(u)
}

// Authenticate verifies the credentials and appends a login audit row.
// The returned loginID is stored on the session so logout can stamp the
// matching logout_time.
func (s *Service) Authenticate(email, password string) (User, int, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, 0, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, 0, ErrInvalidCredentials
	}

	loginID, err := s.repo.RecordLogin(u, time.Now())
	if err != nil {
		return User{}, 0, err
	}
	return u, loginID, nil
}

func (s *Service) Logout(loginID int) error {
	return s.repo.RecordLogout(loginID, time.Now())
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}
