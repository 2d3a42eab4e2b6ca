package user_test

import (
	"context"
	"testing"

	"Foreceipt/internal/domain/user"
	appErrors "Foreceipt/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	byID map[ulid.ULID]*user.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byID: make(map[ulid.ULID]*user.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	f.byID[u.Id] = u
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if _, ok := f.byID[u.Id]; !ok {
		return appErrors.ErrUserNotFound
	}
	f.byID[u.Id] = u
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, appErrors.ErrUserNotFound
}

func seedUser(t *testing.T, repo *fakeUserRepository, svc *user.Service, password string) *user.User {
	t.Helper()

	entity := &user.User{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: password,
	}
	if err := svc.Create(context.Background(), entity); err != nil {
		t.Fatalf("erro inesperado ao criar usuário: %v", err)
	}
	return entity
}

func TestCreateNormalizesName(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)

	entity := &user.User{
		Name:     "  maria   da silva ",
		Email:    "maria@example.com",
		Password: "Str0ng@Pass",
	}
	if err := svc.Create(context.Background(), entity); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	stored := repo.byID[entity.Id]
	if stored.Name != "Maria Da Silva" {
		t.Fatalf("nome não normalizado: %q", stored.Name)
	}
}

func TestUpdateName(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)
	entity := seedUser(t, repo, svc, "Str0ng@Pass")

	updated, err := svc.UpdateName(context.Background(), entity.Id, "  joana   prado ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated.Name != "Joana Prado" {
		t.Fatalf("nome não normalizado: %q", updated.Name)
	}

	stored := repo.byID[entity.Id]
	if stored.Name != "Joana Prado" {
		t.Fatalf("nome não persistido: %q", stored.Name)
	}
}

func TestUpdateNameEmpty(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)
	entity := seedUser(t, repo, svc, "Str0ng@Pass")

	_, err := svc.UpdateName(context.Background(), entity.Id, "   ")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrValidation.Code {
		t.Fatalf("esperado erro de validação, veio %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)
	entity := seedUser(t, repo, svc, "Str0ng@Pass")

	if err := svc.UpdatePassword(context.Background(), entity.Id, "Str0ng@Pass", "N0va@Senha"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	stored := repo.byID[entity.Id]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("N0va@Senha")); err != nil {
		t.Fatalf("senha nova não aplicada: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Str0ng@Pass")); err == nil {
		t.Fatal("senha antiga continua válida")
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)
	entity := seedUser(t, repo, svc, "Str0ng@Pass")

	err := svc.UpdatePassword(context.Background(), entity.Id, "Errada@123", "N0va@Senha")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrInvalidCredentials.Code {
		t.Fatalf("esperado INVALID_CREDENTIALS, veio %v", err)
	}
}

func TestUpdatePasswordWeakNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		newPassword string
	}{
		{"curta", "Ab@1"},
		{"sem maiúscula", "n0va@senha"},
		{"sem caractere especial", "N0vaSenha"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newFakeUserRepository()
			svc := user.NewService(repo)
			entity := seedUser(t, repo, svc, "Str0ng@Pass")

			err := svc.UpdatePassword(context.Background(), entity.Id, "Str0ng@Pass", tc.newPassword)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != appErrors.ErrValidation.Code {
				t.Fatalf("esperado erro de validação, veio %v", err)
			}
		})
	}
}
