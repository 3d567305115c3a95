package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidMobile is returned for mobile numbers that are not ten digits.
	ErrInvalidMobile = errors.New("invalid mobile number format")

	// ErrInvalidOTP is returned when no OTP is pending or the code does not match.
	ErrInvalidOTP = errors.New("invalid OTP")

	// ErrInvalidSession is returned for unknown or expired session tokens.
	ErrInvalidSession = errors.New("invalid session")
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Service implements the simulated OTP login flow. The same fixed code is
// issued to every mobile number; only its bcrypt hash is stored.
type Service struct {
	users        UserStore
	creds        CredentialStore
	simulatedOTP string
}

// NewService creates an auth service issuing the given simulated OTP.
func NewService(users UserStore, creds CredentialStore, simulatedOTP string) *Service {
	return &Service{users: users, creds: creds, simulatedOTP: simulatedOTP}
}

// RequestOTP validates the mobile number and issues the simulated OTP for
// it. The returned message echoes the code, as a real gateway would
// deliver it out of band.
func (s *Service) RequestOTP(mobile string) (string, error) {
	if !mobilePattern.MatchString(mobile) {
		return "", ErrInvalidMobile
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.simulatedOTP), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing OTP: %w", err)
	}
	if err := s.creds.SetOTP(mobile, string(hash)); err != nil {
		return "", fmt.Errorf("storing OTP: %w", err)
	}

	slog.Info("simulated OTP issued", "mobile", mobile)
	return fmt.Sprintf("OTP sent to %s. (Simulated: %s)", mobile, s.simulatedOTP), nil
}

// VerifyOTP checks the code against the pending OTP for the mobile number.
// The pending OTP is consumed regardless of outcome. On success the user
// is looked up or registered and a new session is opened.
func (s *Service) VerifyOTP(mobile, otp string) (Session, error) {
	hash, err := s.creds.TakeOTP(mobile)
	if errors.Is(err, ErrCredentialNotFound) {
		return Session{}, ErrInvalidOTP
	}
	if err != nil {
		return Session{}, fmt.Errorf("loading OTP: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(otp)) != nil {
		return Session{}, ErrInvalidOTP
	}

	user, err := s.users.GetByMobile(mobile)
	if errors.Is(err, ErrUserNotFound) {
		user, err = s.users.Create(mobile)
	}
	if err != nil {
		return Session{}, fmt.Errorf("resolving user: %w", err)
	}

	token := newToken()
	if err := s.creds.SetSession(token, user.ID); err != nil {
		return Session{}, fmt.Errorf("opening session: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return Session{Token: token, User: user}, nil
}

// UserForToken resolves a session token to its user.
func (s *Service) UserForToken(token string) (User, error) {
	if token == "" {
		return User{}, ErrInvalidSession
	}
	userID, err := s.creds.GetSession(token)
	if errors.Is(err, ErrCredentialNotFound) {
		return User{}, ErrInvalidSession
	}
	if err != nil {
		return User{}, fmt.Errorf("loading session: %w", err)
	}

	user, err := s.users.GetByID(userID)
	if errors.Is(err, ErrUserNotFound) {
		return User{}, ErrInvalidSession
	}
	if err != nil {
		return User{}, fmt.Errorf("loading user: %w", err)
	}
	return user, nil
}

// Logout closes the session. Logging out an unknown token is not an error.
func (s *Service) Logout(token string) error {
	return s.creds.DeleteSession(token)
}

func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return generateID()
	}
	return fmt.Sprintf("%x", b)
}
