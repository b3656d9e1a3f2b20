package middleware

import (
	"fmt"

	"github.com/lezzetkesif/lezzetkesif/pkg"
)

var (
	errAuthRequired      = fmt.Errorf("%w: authorization header required", pkg.ErrUnauthorized)
	errInvalidAuthFormat = fmt.Errorf("%w: invalid authorization format, use: Bearer <token>", pkg.ErrUnauthorized)
)
