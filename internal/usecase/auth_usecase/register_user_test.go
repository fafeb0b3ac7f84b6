package auth

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	//DBの採番を模す
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type stubVerifier struct{}

func (stubVerifier) Verify(plain string, hashed string) bool { return "hashed:"+plain == hashed }

type stubIssuer struct{}

func (stubIssuer) Issue(user model.User, now time.Time) (string, error) {
	return "token-for-" + user.Email, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newRegisterFixture() (*RegisterUsecase, *UserRepoMock) {
	userRepo := new(UserRepoMock)
	uc := NewRegisterUsecase(userRepo, stubHasher{}, stubIssuer{}, fixedClock{testNow})
	return uc, userRepo
}

func TestRegister_Success(t *testing.T) {
	uc, userRepo := newRegisterFixture()

	userRepo.On("FindByEmail", mock.Anything, "taro@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "Taro" &&
			u.Email == "taro@example.com" &&
			u.PasswordHash == "hashed:secret1" &&
			u.CreatedAt.Equal(testNow)
	})).Return(nil)

	out, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "  Taro  ",
		Email:    " taro@example.com ",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-for-taro@example.com", out.Token)
	assert.Equal(t, int64(1), out.User.ID)
	userRepo.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	uc, _ := newRegisterFixture()

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Taro", Email: "", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingFields)

	//空白だけの名前も欠け扱い
	_, err = uc.Execute(context.Background(), RegisterInput{Name: "   ", Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	uc, _ := newRegisterFixture()

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Taro", Email: "a@b.com", Password: "12345"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, userRepo := newRegisterFixture()

	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&model.User{ID: 9, Email: "taken@example.com"}, nil)

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Taro", Email: "taken@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateRaceOnInsert(t *testing.T) {
	uc, userRepo := newRegisterFixture()

	//チェックとINSERTの間に他人が同じemailで登録した場合
	userRepo.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Taro", Email: "race@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestBcryptHashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)
	verifier := NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hashed)

	assert.True(t, verifier.Verify("secret1", hashed))
	assert.False(t, verifier.Verify("wrongpw", hashed))
}
