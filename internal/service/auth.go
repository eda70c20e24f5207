package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/stockeye/internal/domain"
)

// AuthService manages the current-user record and the session tokens that
// carry it across the HTTP boundary. There is no credential store: signing in
// with any email creates the user, and signing out destroys the profile's
// data.
type AuthService struct {
	users     domain.UserStore
	products  domain.ProductRepository
	sales     domain.SaleRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserStore, products domain.ProductRepository, sales domain.SaleRepository, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		products:  products,
		sales:     sales,
		jwtSecret: []byte(jwtSecret),
	}
}

// UserIDFromEmail derives the stable user ID recorded on products and sales:
// the first "@" and the first "." in the email are replaced with "_".
func UserIDFromEmail(email string) string {
	id := strings.Replace(email, "@", "_", 1)
	return strings.Replace(id, ".", "_", 1)
}

// SignIn stores the user derived from email as the current user and returns
// it with a signed session token.
func (s *AuthService) SignIn(ctx context.Context, email string) (*domain.User, string, error) {
	if email == "" {
		return nil, "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	user := &domain.User{
		ID:    UserIDFromEmail(email),
		Email: email,
	}

	if err := s.users.SetCurrent(ctx, user); err != nil {
		return nil, "", fmt.Errorf("set current user: %w", err)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", fmt.Errorf("generate jwt: %w", err)
	}

	return user, token, nil
}

// CurrentUser returns the signed-in user, or domain.ErrNotFound when the
// profile is signed out.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return s.users.Current(ctx)
}

// SignOut removes the current user and purges the product and sale
// collections. This is destructive by design, not a mere session end: the
// profile starts over on the next sign-in.
func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.users.Clear(ctx); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	if err := s.products.Clear(ctx); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	if err := s.sales.Clear(ctx); err != nil {
		return fmt.Errorf("clear sales: %w", err)
	}
	return nil
}

// ValidateToken parses and validates a session token, returning the user ID
// from the sub claim.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}

	return sub, nil
}

func (s *AuthService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
