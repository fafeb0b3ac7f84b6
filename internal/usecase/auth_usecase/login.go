package auth

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/repository"
)

// メールまたはパスワードが違う。
// ユーザー列挙を防ぐため、どちらが違うかは区別しない。
var ErrInvalidCredentials = errors.New("invalid email or password")

// ログイン入力の必須欠け
var ErrMissingCredentials = errors.New("email and password are required")

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (AuthOutput, error) {
	var out AuthOutput

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return out, ErrMissingCredentials
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return out, err
	}
	if user == nil {
		return out, ErrInvalidCredentials
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	token, err := u.issuer.Issue(*user, u.clock.Now())
	if err != nil {
		return out, err
	}

	out.Token = token
	out.User = *user
	return out, nil
}
