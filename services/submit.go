package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
)

// submitGate, değerlendirme ve yorum gönderiminin ortak ön adımları:
// kullanıcı başına hız sınırı ve yapay ağ gecikmesi.
type submitGate struct {
	limiter *ratelimit.SubmitRateLimiter // nil ise sınır yok
	delay   time.Duration
}

// pass, sınırı kontrol eder ve gecikme kadar bekler. İstek iptal edilirse
// beklemeyi keser ve ctx hatasını döner; hiçbir şey yazılmaz.
func (g submitGate) pass(ctx context.Context, userID string) error {
	if g.limiter != nil && !g.limiter.Allow(userID) {
		return fmt.Errorf("%w: please wait %d seconds before submitting again",
			pkg.ErrTooManyRequests, g.limiter.CooldownSeconds(userID))
	}

	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
