package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/VorteXchange1987/kinea-1/internal/config"
	"github.com/VorteXchange1987/kinea-1/internal/ids"
	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/internal/notify"
	"github.com/VorteXchange1987/kinea-1/internal/repository"
	"github.com/VorteXchange1987/kinea-1/internal/security"
	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// Sentinel auth errors. The messages are the user-facing detail
// strings sent on the wire.
var (
	ErrInvalidCredentials = errors.New("Email veya şifre hatalı")
	ErrBanned             = errors.New("Hesabınız engellenmiş")
	ErrTaken              = errors.New("Email veya kullanıcı adı zaten kullanımda")
	ErrOnlyGmail          = errors.New("Sadece Gmail adresleri kabul edilir (@gmail.com)")
	ErrUsernameLength     = errors.New("Kullanıcı adı 3-30 karakter olmalıdır")
	ErrPasswordLength     = errors.New("Şifre en az 6 karakter olmalıdır")
)

type AuthService struct {
	users    *repository.UserRepository
	telegram *notify.Telegram
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, telegram *notify.Telegram, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		telegram: telegram,
		cfg:      cfg,
		log:      log,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	IPAddress *string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress *string
}

// AuthResult pairs a fresh bearer token with the account it belongs to.
type AuthResult struct {
	Token string
	User  models.User
}

func validateRegister(input RegisterInput) error {
	if n := utf8.RuneCountInString(input.Username); n < 3 || n > 30 {
		return ErrUsernameLength
	}
	if !strings.HasSuffix(input.Email, "@gmail.com") {
		return ErrOnlyGmail
	}
	if utf8.RuneCountInString(input.Password) < 6 {
		return ErrPasswordLength
	}
	return nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := validateRegister(input); err != nil {
		return AuthResult{}, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return AuthResult{}, ErrTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}
	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return AuthResult{}, ErrTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         api.RoleUser,
		IPAddress:    input.IPAddress,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}

	token, err := security.GenerateToken(s.cfg.Security.JWTSecret, user.ID, user.Role, s.cfg.Security.TokenTTL)
	if err != nil {
		return AuthResult{}, err
	}

	s.telegram.UserRegistered(user.Username, user.Email, input.IPAddress)
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	if user.IsBanned {
		return AuthResult{}, ErrBanned
	}

	token, err := security.GenerateToken(s.cfg.Security.JWTSecret, user.ID, user.Role, s.cfg.Security.TokenTTL)
	if err != nil {
		return AuthResult{}, err
	}

	s.telegram.UserLoggedIn(user.Username, user.Email, input.IPAddress)

	return AuthResult{Token: token, User: user}, nil
}

// EnsureSuperAdmin creates the configured super-admin account when it
// does not exist yet. Called once at startup.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context) error {
	sa := s.cfg.SuperAdmin
	if sa.Username == "" || sa.Email == "" || sa.Password == "" {
		s.log.Debug().Msg("super admin not configured, skipping bootstrap")
		return nil
	}

	if _, err := s.users.FindByUsername(ctx, sa.Username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	passwordHash, err := security.HashPassword(sa.Password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           ids.New(),
		Username:     sa.Username,
		Email:        strings.ToLower(sa.Email),
		PasswordHash: passwordHash,
		Role:         api.RoleSuperAdmin,
		IsSuperAdmin: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("username", sa.Username).Msg("super admin created")
	return nil
}
