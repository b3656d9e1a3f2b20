package repository

import "context"

// AdminRepository, "admins" tablosu. Satırın varlığı admin yetkisi demektir.
type AdminRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
}
