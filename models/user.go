package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// anonymousName, ne görünen adı ne de e-postası olan kullanıcı için gösterilen isim.
const anonymousName = "Anonim"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User, bir kullanıcıyı temsil eder.
type User struct {
	ID           string    `json:"id" yaml:"id"`
	Email        string    `json:"email" yaml:"email"`
	DisplayName  *string   `json:"display_name" yaml:"display_name"` // *string = nullable
	PasswordHash string    `json:"-" yaml:"-"`                       // json:"-" → API response'a DAHİL ETME
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// Name, kullanıcının ekranda gösterilecek adı.
// Sıra: görünen ad → e-posta → "Anonim".
func (u *User) Name() string {
	if u == nil {
		return anonymousName
	}
	if u.DisplayName != nil && strings.TrimSpace(*u.DisplayName) != "" {
		return *u.DisplayName
	}
	if u.Email != "" {
		return u.Email
	}
	return anonymousName
}

// SignUpRequest, kayıt olurken gelen veri.
// PasswordHash yerine Password alırız, hash'leme service katmanında yapılır.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Validate, SignUpRequest'i doğrular.
//   - Email: geçerli format, küçük harfe çevrilir
//   - Password: minimum 6 karakter
//   - FullName: opsiyonel, max 64 karakter
func (r *SignUpRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("invalid email address")
	}
	if utf8.RuneCountInString(r.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	r.FullName = strings.TrimSpace(r.FullName)
	if utf8.RuneCountInString(r.FullName) > 64 {
		return fmt.Errorf("full name must be at most 64 characters")
	}
	return nil
}

// SignInRequest, giriş yaparken gelen veri.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate, SignInRequest'i doğrular.
func (r *SignInRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// RefreshRequest, signout ve refresh endpoint'lerinin body'si.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Validate, refresh token boş olamaz.
func (r *RefreshRequest) Validate() error {
	r.RefreshToken = strings.TrimSpace(r.RefreshToken)
	if r.RefreshToken == "" {
		return fmt.Errorf("refresh_token is required")
	}
	return nil
}
