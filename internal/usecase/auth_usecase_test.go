package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"gradmatch/internal/domain/user"
	"gradmatch/internal/pkg/jwt"
)

type mockUsers struct {
	user user.User
	err  error
}

func (m *mockUsers) CreateUser(context.Context, user.User) error { return m.err }
func (m *mockUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	if m.user.ID != id {
		return user.User{}, user.ErrNotFound
	}
	return m.user, nil
}
func (m *mockUsers) GetUserByEmail(context.Context, string) (user.User, error) {
	return m.user, m.err
}
func (m *mockUsers) ExistsByEmail(context.Context, string) (bool, error) { return false, m.err }

type mockJWT struct {
	claims jwt.Claims
	err    error

	accessCalls  int
	refreshCalls int
	lastIsAdmin  bool
}

func (m *mockJWT) GenerateAccessToken(userID uuid.UUID, email string, isAdmin bool) (string, error) {
	m.accessCalls++
	m.lastIsAdmin = isAdmin
	return "access-" + userID.String(), nil
}
func (m *mockJWT) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	m.refreshCalls++
	return "refresh-" + userID.String(), nil
}
func (m *mockJWT) ValidateToken(string) (jwt.Claims, error) {
	if m.err != nil {
		return jwt.Claims{}, m.err
	}
	return m.claims, nil
}
func (m *mockJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

func TestAuthUsecase_Refresh_IssuesFreshPair(t *testing.T) {
	usr := user.User{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
	jwtSvc := &mockJWT{claims: jwt.Claims{UserID: usr.ID, TokenType: jwt.TokenTypeRefresh}}

	uc := NewAuthUsecase(nil, &mockUsers{user: usr}, jwtSvc)

	access, refresh, err := uc.Refresh(context.Background(), "some-refresh-token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected a fresh token pair")
	}
	if jwtSvc.accessCalls != 1 || jwtSvc.refreshCalls != 1 {
		t.Fatalf("expected one of each token issued")
	}
	if !jwtSvc.lastIsAdmin {
		t.Fatalf("admin flag must carry into the new access token")
	}
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	usr := user.User{ID: uuid.New()}
	jwtSvc := &mockJWT{claims: jwt.Claims{UserID: usr.ID, TokenType: jwt.TokenTypeAccess}}

	uc := NewAuthUsecase(nil, &mockUsers{user: usr}, jwtSvc)

	_, _, err := uc.Refresh(context.Background(), "an-access-token")
	if err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_ExpiredToken(t *testing.T) {
	jwtSvc := &mockJWT{err: jwt.ErrTokenExpired}
	uc := NewAuthUsecase(nil, &mockUsers{}, jwtSvc)

	_, _, err := uc.Refresh(context.Background(), "stale")
	if err != ErrRefreshTokenExpired {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}

func TestAuthUsecase_Refresh_UnknownUser(t *testing.T) {
	jwtSvc := &mockJWT{claims: jwt.Claims{UserID: uuid.New(), TokenType: jwt.TokenTypeRefresh}}
	uc := NewAuthUsecase(nil, &mockUsers{user: user.User{ID: uuid.New()}}, jwtSvc)

	_, _, err := uc.Refresh(context.Background(), "orphaned")
	if err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_EmptyToken(t *testing.T) {
	uc := NewAuthUsecase(nil, &mockUsers{}, &mockJWT{})

	_, _, err := uc.Refresh(context.Background(), "")
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
