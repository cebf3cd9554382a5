package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"diet-profile-go/internal/auth"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[int64]*User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*User), nextID: 1}
}

func (r *fakeUserRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, user := range r.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) SetOnboardingCompleted(ctx context.Context, id int64) error {
	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.OnboardingCompleted = true
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *auth.TokenCodec) {
	repo := newFakeUserRepo()
	codec := auth.NewTokenCodec("test-secret", time.Hour)
	return NewService(repo, auth.NewBcryptHasher(bcrypt.MinCost), codec), repo, codec
}

func TestSignUpStoresHashedPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.SignUp(context.Background(), SignUpInput{FullName: " Ada ", Email: " A@X.com ", Password: "pw"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected id assigned")
	}
	if created.Email != "a@x.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.FullName != "Ada" {
		t.Fatalf("expected trimmed name, got %q", created.FullName)
	}
	stored := repo.users[created.ID]
	if stored.Password == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if stored.OnboardingCompleted {
		t.Fatalf("expected onboarding not completed")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "A@x.com", Password: "other"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, codec := newTestService()
	created, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	result, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TokenType != TokenTypeBearer {
		t.Fatalf("expected bearer token type, got %q", result.TokenType)
	}
	if result.User.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, result.User.ID)
	}
	subject, err := codec.Subject(result.AccessToken)
	if err != nil || subject != "a@x.com" {
		t.Fatalf("expected token for a@x.com, got %q (%v)", subject, err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "b@x.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestCompleteOnboardingIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestService()
	created, _ := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: "pw"})

	for i := 0; i < 2; i++ {
		if err := svc.CompleteOnboarding(context.Background(), created.ID); err != nil {
			t.Fatalf("call %d: expected no error, got %v", i, err)
		}
	}
	if !repo.users[created.ID].OnboardingCompleted {
		t.Fatalf("expected onboarding completed")
	}

	if err := svc.CompleteOnboarding(context.Background(), 999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	svc, _, codec := newTestService()
	created, _ := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: "pw"})

	token, _, err := codec.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	resolved, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resolved.ID != created.ID {
		t.Fatalf("expected user %d, got %d", created.ID, resolved.ID)
	}
}

func TestResolveFailures(t *testing.T) {
	svc, _, codec := newTestService()

	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "garbage"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for garbage token, got %v", err)
	}

	expired := auth.NewTokenCodec("test-secret", -time.Minute)
	token, _, _ := expired.Issue("a@x.com")
	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}

	ghost, _, _ := codec.Issue("ghost@x.com")
	if _, err := svc.Resolve(context.Background(), ghost); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSignUpRejectsPasswordOverBcryptLimit(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: strings.Repeat("é", 40)})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no user stored, got %d", len(repo.users))
	}

	if _, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@x.com", Password: strings.Repeat("é", 36)}); err != nil {
		t.Fatalf("expected 72-byte password to be accepted, got %v", err)
	}
}
