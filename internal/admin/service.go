package admin

import "golang.org/x/crypto/bcrypt"

// Service provides back-office authentication. The action PIN is a single
// shared secret kept as a bcrypt hash in configuration, not a row in the
// database.
type Service struct {
	repo    Repository
	pinHash string
}

func NewService(repo Repository, pinHash string) *Service {
	return &Service{repo: repo, pinHash: pinHash}
}

func (s *Service) Authenticate(username, password string) (Admin, error) {
	a, err := s.repo.GetByUsername(username)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}
	return a, nil
}

// ValidatePIN checks the destructive-action PIN the dashboard prompts for.
func (s *Service) ValidatePIN(pin string) error {
	if s.pinHash == "" {
		return ErrInvalidPIN
	}
	if bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)) != nil {
		return ErrInvalidPIN
	}
	return nil
}
