// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Service katmanı detay eklemek için wrap eder:
//
//	fmt.Errorf("%w: rating must be between 0 and 5", pkg.ErrBadRequest)
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bunları HTTP status code'larına, page katmanı ise
// "bulunamadı" / "erişim reddedildi" sayfalarına map'ler.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyExists   = errors.New("already exists")
	ErrBadRequest      = errors.New("bad request")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")
)
