// Package ratelimit, bellek içi istek sınırlayıcılar.
//
//   - LoginRateLimiter: IP başına giriş denemesi (brute-force koruması)
//   - SubmitRateLimiter: kullanıcı başına yorum gönderimi (spam koruması)
//
// Tek instance deploy varsayılır; sayaçlar process belleğindedir.
// Paket proje içi hiçbir pakete bağımlı değildir, handlers ve middleware
// arasında import cycle oluşmaz.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

type bucket struct {
	count         int
	windowStart   time.Time
	cooldownUntil time.Time // zero = cooldown yok
}

// limiter, iki sınırlayıcının ortak çekirdeği: sabit pencere + opsiyonel ceza süresi.
type limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	max      int
	window   time.Duration
	cooldown time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

func newLimiter(max int, window, cooldown, cleanupEvery time.Duration) *limiter {
	l := &limiter{
		buckets:  make(map[string]*bucket),
		max:      max,
		window:   window,
		cooldown: cooldown,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop(cleanupEvery)
	return l
}

func (l *limiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		l.buckets[key] = &bucket{count: 1, windowStart: now}
		return true
	}

	if !b.cooldownUntil.IsZero() {
		if now.Before(b.cooldownUntil) {
			return false
		}
		// Ceza bitti → yeni pencere
		b.count, b.windowStart, b.cooldownUntil = 1, now, time.Time{}
		return true
	}

	if now.Sub(b.windowStart) > l.window {
		b.count, b.windowStart = 1, now
		return true
	}

	b.count++
	if b.count <= l.max {
		return true
	}
	if l.cooldown > 0 {
		b.cooldownUntil = now.Add(l.cooldown)
	}
	return false
}

// retryAfter, tekrar denemeden önce beklenecek saniye (yukarı yuvarlanmış). Limit yoksa 0.
func (l *limiter) retryAfter(key string) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		return 0
	}
	var remaining time.Duration
	if !b.cooldownUntil.IsZero() {
		remaining = b.cooldownUntil.Sub(now)
	} else if b.count > l.max {
		remaining = l.window - now.Sub(b.windowStart)
	}
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

func (l *limiter) reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

func (l *limiter) close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *limiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup, hem penceresi hem cezası bitmiş bucket'ları siler.
func (l *limiter) cleanup() {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		windowExpired := now.Sub(b.windowStart) > l.window
		cooldownExpired := b.cooldownUntil.IsZero() || now.After(b.cooldownUntil)
		if windowExpired && cooldownExpired {
			delete(l.buckets, key)
		}
	}
}

// LoginRateLimiter, IP başına giriş denemesi sınırı.
// Pencere içinde maxAttempts aşılırsa pencere bitene kadar reddedilir.
// Başarılı girişte Reset çağrılmalıdır.
type LoginRateLimiter struct{ l *limiter }

// NewLoginRateLimiter, ör: NewLoginRateLimiter(5, 2*time.Minute).
func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{l: newLimiter(maxAttempts, window, 0, time.Minute)}
}

// Allow, false dönerse çağıran 429 dönmelidir. Her çağrı sayacı artırır.
func (rl *LoginRateLimiter) Allow(ip string) bool { return rl.l.allow(ip) }

// Reset, IP sayacını sıfırlar.
func (rl *LoginRateLimiter) Reset(ip string) { rl.l.reset(ip) }

// RetryAfterSeconds, Retry-After header değeri.
func (rl *LoginRateLimiter) RetryAfterSeconds(ip string) int { return rl.l.retryAfter(ip) }

// Close, arka plan temizliğini durdurur.
func (rl *LoginRateLimiter) Close() { rl.l.close() }

// SubmitRateLimiter, kullanıcı başına yorum/değerlendirme gönderim sınırı.
// Pencere içinde maxSubmits aşılırsa kullanıcı cooldown süresince reddedilir.
type SubmitRateLimiter struct{ l *limiter }

// NewSubmitRateLimiter, ör: NewSubmitRateLimiter(5, time.Minute, 2*time.Minute).
func NewSubmitRateLimiter(maxSubmits int, window, cooldown time.Duration) *SubmitRateLimiter {
	return &SubmitRateLimiter{l: newLimiter(maxSubmits, window, cooldown, 30*time.Second)}
}

// Allow, false dönerse gönderim reddedilmelidir.
func (rl *SubmitRateLimiter) Allow(userID string) bool { return rl.l.allow(userID) }

// CooldownSeconds, kalan ceza süresi (saniye). Ceza yoksa 0.
func (rl *SubmitRateLimiter) CooldownSeconds(userID string) int { return rl.l.retryAfter(userID) }

// Close, arka plan temizliğini durdurur.
func (rl *SubmitRateLimiter) Close() { rl.l.close() }

// ExtractIP, istemci IP'sini çıkarır. Sıra: X-Forwarded-For (ilk değer),
// X-Real-IP, RemoteAddr. Uygulama genellikle bir reverse proxy arkasındadır.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
