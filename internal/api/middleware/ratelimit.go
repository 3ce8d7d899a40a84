package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ResourceBookingService/internal/api/handlers"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов на один IP клиента.
// X-Forwarded-For учитывается только при trustForwardedFor (сервис за доверенным прокси).
type RateLimiter struct {
	mu                sync.Mutex
	clients           map[string]*clientLimiter
	rps               rate.Limit
	burst             int
	trustForwardedFor bool
	now               func() time.Time
	lastSweep         time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int, trustForwardedFor bool) *RateLimiter {
	return &RateLimiter{
		clients:           make(map[string]*clientLimiter),
		rps:               rate.Limit(requestsPerSecond),
		burst:             burst,
		trustForwardedFor: trustForwardedFor,
		now:               time.Now,
	}
}

// Middleware отвечает 429, если лимит клиента исчерпан
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(l.clientIP(r)) {
			handlers.RespondTooManyRequests(w, "слишком много запросов, попробуйте позже")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// sweep удаляет давно неактивных клиентов не чаще раза в минуту
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(l.clients, key)
		}
	}
}

func (l *RateLimiter) clientIP(r *http.Request) string {
	if l.trustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			return strings.TrimSpace(strings.Split(fwd, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
