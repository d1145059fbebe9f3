package users

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"codeberg.org/bookshelf/server/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

// the raw texts match the hosted auth service the site used to sign in with,
// so the error classifier maps them to the same friendly messages
//
//nolint:staticcheck // capitalised on purpose
var (
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrEmailNotConfirmed  = errors.New("Email not confirmed")
	ErrUserExists         = errors.New("User already registered")
	ErrWeakPassword       = errors.New("Password should be at least 6 characters")
	ErrSignupDisabled     = errors.New("Signup is disabled")
	ErrUserNotFound       = errors.New("user not found")
)

// compared against when the e-mail is unknown so both paths cost the same
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("bookshelf-dummy-password"), bcrypt.DefaultCost)

// creates a new account repository
func NewRepository(db storage.DB, signupEnabled bool) *Repository {
	return &Repository{db: db, signupEnabled: signupEnabled}
}

func scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.EmailConfirmedAt,
		&user.IsAdmin,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checks an e-mail and password pair
func (r *Repository) Authenticate(ctx context.Context, creds Credentials) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByEmail, normalizeEmail(creds.Email)))
	if errors.Is(err, pgx.ErrNoRows) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(creds.Password)) //nolint:errcheck // timing only
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.EmailConfirmedAt == nil {
		return nil, ErrEmailNotConfirmed
	}

	return user, nil
}

func checkSignup(enabled bool, creds Credentials) error {
	if !enabled {
		return ErrSignupDisabled
	}

	if utf8.RuneCountInString(creds.Password) < MinPasswordLength {
		return ErrWeakPassword
	}

	return nil
}

// registers a reader account; admins are granted through user_roles only
func (r *Repository) SignUp(ctx context.Context, creds Credentials) (*User, error) {
	if err := checkSignup(r.signupEnabled, creds); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRow(ctx, queryCreate, normalizeEmail(creds.Email), string(hash)))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrUserExists
	}

	return user, err
}

// finds an account by its ID
func (r *Repository) FindByID(ctx context.Context, userID string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	return user, err
}

// finds an account by e-mail, ignoring case
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryFindByEmail, normalizeEmail(email)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	return user, err
}

// gives an account the admin role; granting twice is harmless
func (r *Repository) GrantAdmin(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, queryGrantAdmin, userID)
	return err
}
