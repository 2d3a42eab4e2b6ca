package auth_test

import (
	"context"
	"net/http"
	"testing"

	"Foreceipt/internal/domain/auth"
	"Foreceipt/internal/domain/user"
	appErrors "Foreceipt/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users map[string]*user.User

	createFn func(ctx context.Context, u *user.User) error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*user.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	for _, u := range f.users {
		if u.Id == id {
			return u, nil
		}
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, appErrors.ErrUserNotFound
}

func newAuthService(repo *fakeUserRepository) *auth.Service {
	userSvc := user.NewService(repo)
	return auth.NewService(repo, userSvc)
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := newAuthService(repo)

	entity := user.User{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "Str0ng@Pass",
	}
	if err := svc.Register(context.Background(), &entity); err != nil {
		t.Fatalf("erro inesperado no registro: %v", err)
	}

	stored := repo.users["maria@example.com"]
	if stored == nil {
		t.Fatal("usuário não persistido")
	}
	if stored.Password == "Str0ng@Pass" {
		t.Fatal("senha persistida em texto puro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Str0ng@Pass")); err != nil {
		t.Fatalf("hash de senha inválido: %v", err)
	}

	logged, err := svc.Login(context.Background(), auth.Login{
		Email:    "maria@example.com",
		Password: "Str0ng@Pass",
	})
	if err != nil {
		t.Fatalf("erro inesperado no login: %v", err)
	}
	if logged.Id != stored.Id {
		t.Fatalf("login devolveu outro usuário: %s != %s", logged.Id, stored.Id)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := newAuthService(repo)

	first := user.User{Name: "A", Email: "dup@example.com", Password: "Str0ng@Pass"}
	if err := svc.Register(context.Background(), &first); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	second := user.User{Name: "B", Email: "dup@example.com", Password: "Str0ng@Pass"}
	err := svc.Register(context.Background(), &second)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrEmailAlreadyExists.Code {
		t.Fatalf("esperado EMAIL_ALREADY_EXISTS, veio %v", err)
	}
}

func TestRegisterDuplicateEmailConcurrent(t *testing.T) {
	t.Parallel()

	// A checagem prévia de email não vê o registro concorrente; a violação do
	// índice único chega pelo Create já traduzida pelo repositório.
	repo := newFakeUserRepository()
	repo.createFn = func(ctx context.Context, u *user.User) error {
		return appErrors.ErrEmailAlreadyExists
	}
	svc := newAuthService(repo)

	entity := user.User{Name: "C", Email: "race@example.com", Password: "Str0ng@Pass"}
	err := svc.Register(context.Background(), &entity)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrEmailAlreadyExists.Code {
		t.Fatalf("esperado EMAIL_ALREADY_EXISTS, veio %v", err)
	}
	if appErr.StatusCode != http.StatusConflict {
		t.Fatalf("esperado status 409, veio %d", appErr.StatusCode)
	}
}

func TestRegisterPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
	}{
		{"curta", "Ab@1"},
		{"sem maiúscula", "str0ng@pass"},
		{"sem caractere especial", "Str0ngPass"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newAuthService(newFakeUserRepository())
			entity := user.User{Name: "X", Email: "x@example.com", Password: tc.password}

			err := svc.Register(context.Background(), &entity)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != appErrors.ErrValidation.Code {
				t.Fatalf("esperado erro de validação, veio %v", err)
			}
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := newAuthService(repo)

	entity := user.User{Name: "A", Email: "a@example.com", Password: "Str0ng@Pass"}
	if err := svc.Register(context.Background(), &entity); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	tests := []struct {
		name  string
		login auth.Login
	}{
		{"senha errada", auth.Login{Email: "a@example.com", Password: "Wrong@Pass1"}},
		{"email desconhecido", auth.Login{Email: "nobody@example.com", Password: "Str0ng@Pass"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Login(context.Background(), tc.login)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != appErrors.ErrInvalidCredentials.Code {
				t.Fatalf("esperado INVALID_CREDENTIALS, veio %v", err)
			}
		})
	}
}
