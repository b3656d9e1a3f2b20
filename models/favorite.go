package models

import "time"

// Favorite, kullanıcının favori restoranı. (user_id, restaurant_id) çifti tekildir.
type Favorite struct {
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}
