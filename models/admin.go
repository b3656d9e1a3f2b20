package models

// AdminStatus, GET /api/admin/status response'u.
type AdminStatus struct {
	IsAdmin bool `json:"is_admin"`
}

// EntityKind, admin panelindeki tablo türü. Editor oturumları ve
// silme onayı bu türe göre ayrılır.
type EntityKind string

const (
	KindRestaurants EntityKind = "restaurants"
	KindBlog        EntityKind = "blog"
	KindReviews     EntityKind = "reviews"
)

// Valid, türün bilinen değerlerden biri olup olmadığını döner.
func (k EntityKind) Valid() bool {
	return k == KindRestaurants || k == KindBlog || k == KindReviews
}
