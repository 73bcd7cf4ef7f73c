package bot

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

// Cooldown hands every user their own token bucket of burst commands
// refilled over window.
type Cooldown struct {
	mu        sync.Mutex
	burst     int
	window    time.Duration
	limiters  map[int64]*userLimiter
	lastSweep time.Time
	now       func() time.Time
}

type userLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

func NewCooldown(burst int, window time.Duration) *Cooldown {
	if burst < 1 {
		burst = 3
	}
	if window <= 0 {
		window = 10 * time.Second
	}
	return &Cooldown{
		burst:    burst,
		window:   window,
		limiters: map[int64]*userLimiter{},
		now:      time.Now,
	}
}

func (c *Cooldown) Allow(user int64) bool {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	if now.Sub(c.lastSweep) >= c.window {
		c.sweep(now)
	}
	l, ok := c.limiters[user]
	if !ok {
		l = &userLimiter{Limiter: rate.NewLimiter(rate.Every(c.window/time.Duration(c.burst)), c.burst)}
		c.limiters[user] = l
	}
	l.lastSeen = now
	return l.AllowN(now, 1)
}

// sweep drops limiters idle for a whole window. Their buckets have refilled
// by then, so a fresh limiter answers the same.
func (c *Cooldown) sweep(now time.Time) {
	for user, l := range c.limiters {
		if now.Sub(l.lastSeen) >= c.window {
			delete(c.limiters, user)
		}
	}
	c.lastSweep = now
}

func (c *Cooldown) Message() string {
	return fmt.Sprintf("To prevent spam, the command has been rate limited to %d times every %s", c.burst, humanWindow(c.window))
}

func humanWindow(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", d/time.Second)
	}
	return d.String()
}

// limit is the middleware every command route goes through.
func (b *Bot) limit(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return next(c)
		}
		if !b.cooldown.Allow(sender.ID) {
			b.logger.Info().Int64("user", sender.ID).Str("username", sender.Username).Msg("Rate limit reached")
			return c.Send(b.cooldown.Message())
		}
		return next(c)
	}
}
