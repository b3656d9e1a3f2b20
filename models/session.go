package models

import "time"

// Session, refresh token oturumu.
//
// Access token kısa ömürlü, refresh token uzun ömürlü.
// Refresh token'ları DB'de tutarak signout'ta ilgili oturumu silebiliriz.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RefreshToken string    `json:"-"` // API'ye gönderilmez
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthTokens, signin/signup/refresh response'undaki token çifti.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // saniye
}

// AuthResult, auth endpoint'lerinin döndüğü yapı: {user, session}.
type AuthResult struct {
	User    *User       `json:"user"`
	Session *AuthTokens `json:"session"`
}
