package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, JWT access token'ın payload'ı.
//
// Server her request'te bu token'ı doğrular, DB'ye gitmeden
// kullanıcının kim olduğunu bilir.
//
// models paketinde tanımlanır çünkü services, ws ve middleware katmanlarının
// hepsi kullanır; circular dependency oluşmaz.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
