package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 入力が不正
	ErrMissingFields    = errors.New("name, email and password are required")
	ErrPasswordTooShort = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// パスワードの最低文字数
const minPasswordLen = 6

// 会員登録の入力
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// tokenとuserをそのままレスポンスへ
type AuthOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 署名付きトークンを発行する約束
type TokenIssuer interface {
	Issue(user model.User, now time.Time) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUsecaseは会員登録の処理。
type RegisterUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewRegisterUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	clock Clock,
) *RegisterUsecase {
	return &RegisterUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		clock:    clock,
	}
}

// 会員登録実行
func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) (AuthOutput, error) {
	var out AuthOutput

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return out, ErrMissingFields
	}
	if len(in.Password) < minPasswordLen {
		return out, ErrPasswordTooShort
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, err
	}
	if existing != nil {
		return out, ErrEmailAlreadyExists
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    u.clock.Now(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		//同時登録の競合もConflict扱い
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return out, ErrEmailAlreadyExists
		}
		return out, err
	}

	token, err := u.issuer.Issue(*user, u.clock.Now())
	if err != nil {
		return out, err
	}

	out.Token = token
	out.User = *user
	return out, nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
