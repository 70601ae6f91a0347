package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kebabmane/toDo/internal/apperrors"
	"github.com/kebabmane/toDo/internal/logger"
	"github.com/kebabmane/toDo/internal/models"
	"github.com/kebabmane/toDo/internal/password"
	"github.com/kebabmane/toDo/internal/repositories"
	"github.com/segmentio/kafka-go"
)

const (
	minUsernameLength = 3
	resetTokenBytes   = 32

	msgRegisterMissing  = "Missing required fields: username, email, password"
	msgUsernameLength   = "Username must be at least 3 characters long"
	msgInvalidEmail     = "Invalid email format"
	msgPasswordLength   = "Password must be at least 6 characters"
	msgUsernameTaken    = "Username already exists"
	msgEmailTaken       = "Email already exists"
	msgLoginMissing     = "Missing required fields: username, password"
	msgBadCredentials   = "Invalid username or password"
	msgUserNotFound     = "User not found"
	msgEmailRequired    = "Email is required"
	msgResetMissing     = "Token and new password are required"
	msgInvalidResetTok  = "Invalid or expired token"
	resetEventOperation = "password_reset_requested"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserStore defines the persistence operations on accounts.
type UserStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, username, email, passwordHash string, role models.Role) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Update(ctx context.Context, id int64, role *models.Role, isActive *bool) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetRoleByUsername(ctx context.Context, username string, role models.Role) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ResetTokenStore persists password reset tokens.
type ResetTokenStore interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	Delete(ctx context.Context, id int64) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, role models.Role) (string, error)
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration, login and the password reset flow.
type AuthService struct {
	users       UserStore
	tokens      ResetTokenStore
	jwt         JWTGenerator
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
	resetTTL    time.Duration
}

// NewAuthService creates a new AuthService instance. kafkaWriter may be nil, in which
// case reset events are not published.
func NewAuthService(
	users UserStore,
	tokens ResetTokenStore,
	jwt JWTGenerator,
	hasher PasswordHasher,
	kafkaWriter KafkaWriter,
	resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		jwt:         jwt,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
		resetTTL:    resetTTL,
	}
}

// Register validates the payload, creates the account and issues a token.
// The very first account becomes an admin.
func (svc *AuthService) Register(ctx context.Context, p models.Payload) (*models.UserDB, string, error) {
	if !p.Has("username") || !p.Has("email") || !p.Has("password") {
		return nil, "", apperrors.Validation(msgRegisterMissing)
	}

	username, err := p.String("username")
	username = strings.ToLower(strings.TrimSpace(username))
	if err != nil || utf8.RuneCountInString(username) < minUsernameLength {
		return nil, "", apperrors.Validation(msgUsernameLength)
	}

	email, err := p.String("email")
	email = strings.ToLower(strings.TrimSpace(email))
	if err != nil || !emailPattern.MatchString(email) {
		return nil, "", apperrors.Validation(msgInvalidEmail)
	}

	plain, err := p.String("password")
	if err != nil || utf8.RuneCountInString(plain) < password.MinLength {
		return nil, "", apperrors.Validation(msgPasswordLength)
	}

	count, err := svc.users.Count(ctx)
	if err != nil {
		return nil, "", internalError("Registration failed", err)
	}

	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
		logger.Log.Infow("first user registers as admin", "username", username)
	} else {
		if err := svc.checkAvailable(ctx, username, email); err != nil {
			return nil, "", err
		}
	}

	digest, err := svc.hasher.Hash(plain)
	if err != nil {
		return nil, "", internalError("Registration failed", err)
	}

	user, err := svc.users.Create(ctx, username, email, digest, role)
	switch {
	case errors.Is(err, repositories.ErrDuplicateUsername):
		logger.Log.Warnw("username already exists", "username", username)
		return nil, "", apperrors.Conflict(msgUsernameTaken)
	case errors.Is(err, repositories.ErrDuplicateEmail):
		logger.Log.Warnw("email already exists", "email", email)
		return nil, "", apperrors.Conflict(msgEmailTaken)
	case err != nil:
		return nil, "", internalError("Database error during registration", err)
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", internalError("Error creating access token", err)
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, token, nil
}

func (svc *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	taken, err := svc.users.ExistsByUsername(ctx, username)
	if err != nil {
		return internalError("Registration failed", err)
	}
	if taken {
		logger.Log.Warnw("username already exists", "username", username)
		return apperrors.Conflict(msgUsernameTaken)
	}

	taken, err = svc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return internalError("Registration failed", err)
	}
	if taken {
		logger.Log.Warnw("email already exists", "email", email)
		return apperrors.Conflict(msgEmailTaken)
	}
	return nil
}

// Login authenticates by username or email and returns the user with a fresh token.
func (svc *AuthService) Login(ctx context.Context, p models.Payload) (*models.UserDB, string, error) {
	if !p.Has("username") || !p.Has("password") {
		return nil, "", apperrors.Validation(msgLoginMissing)
	}
	login, err := p.String("username")
	if err != nil {
		return nil, "", apperrors.Validation(msgLoginMissing)
	}
	plain, err := p.String("password")
	if err != nil {
		return nil, "", apperrors.Validation(msgLoginMissing)
	}
	login = strings.ToLower(strings.TrimSpace(login))

	user, err := svc.users.GetByUsernameOrEmail(ctx, login)
	if err != nil {
		return nil, "", internalError("Login failed", err)
	}
	if user == nil || !svc.hasher.Verify(plain, user.PasswordHash) {
		logger.Log.Warnw("invalid credentials", "login", login)
		return nil, "", apperrors.Authentication(msgBadCredentials)
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		return nil, "", internalError("Login failed", err)
	}

	logger.Log.Infow("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Me returns the profile of the authenticated caller.
func (svc *AuthService) Me(ctx context.Context, callerID int64) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, internalError("Failed to get user", err, "user_id", callerID)
	}
	if user == nil {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	return user, nil
}

// RequestPasswordReset issues a reset token when the email belongs to an account.
// The outcome is never revealed to the caller.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, p models.Payload) error {
	email, err := p.String("email")
	email = strings.ToLower(strings.TrimSpace(email))
	if err != nil || email == "" {
		return apperrors.Validation(msgEmailRequired)
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		return internalError("Failed to request password reset", err)
	}
	if user == nil {
		logger.Log.Infow("password reset requested for unknown email")
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return internalError("Failed to request password reset", err)
	}
	expiresAt := time.Now().Add(svc.resetTTL)

	if err := svc.tokens.Create(ctx, user.ID, token, expiresAt); err != nil {
		return internalError("Failed to request password reset", err, "user_id", user.ID)
	}

	svc.publishResetRequested(ctx, models.PasswordResetEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Operation: resetEventOperation,
	})
	return nil
}

// ResetPassword redeems a reset token and replaces the credential. Tokens are single use.
func (svc *AuthService) ResetPassword(ctx context.Context, p models.Payload) error {
	token, tokErr := p.String("token")
	plain, pwErr := p.String("password")
	if tokErr != nil || pwErr != nil || token == "" || plain == "" {
		return apperrors.Validation(msgResetMissing)
	}

	stored, err := svc.tokens.GetByToken(ctx, token)
	if err != nil {
		return internalError("Failed to reset password", err)
	}
	if stored == nil || stored.IsExpired(time.Now()) {
		return apperrors.Validation(msgInvalidResetTok)
	}

	user, err := svc.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return internalError("Failed to reset password", err)
	}
	if user == nil {
		return apperrors.NotFound(msgUserNotFound)
	}

	digest, err := svc.hasher.Hash(plain)
	if err != nil {
		return internalError("Failed to reset password", err)
	}
	if err := svc.users.UpdatePassword(ctx, user.ID, digest); err != nil {
		return internalError("Failed to reset password", err, "user_id", user.ID)
	}
	if err := svc.tokens.Delete(ctx, stored.ID); err != nil {
		return internalError("Failed to reset password", err, "user_id", user.ID)
	}

	logger.Log.Infow("password reset", "user_id", user.ID)
	return nil
}

// publishResetRequested publishes the reset event to Kafka for out-of-band delivery.
func (svc *AuthService) publishResetRequested(ctx context.Context, event models.PasswordResetEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal reset event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Email),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish reset event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Reset event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
