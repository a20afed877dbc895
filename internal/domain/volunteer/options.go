package volunteer

import (
	"github.com/okian/squads/internal/domain/dedupe"
	"github.com/okian/squads/pkg/logger"
)

// Member key sources accepted by WithKey.
const (
	KeyEmail = "email"
	KeyID    = "id"
)

// Option configures a Classifier.
type Option func(*Classifier)

// WithKey selects what identifies a member: the Username column (KeyEmail)
// or the 1-based row ordinal (KeyID). Other values are ignored.
func WithKey(key string) Option {
	return func(c *Classifier) {
		if key == KeyEmail || key == KeyID {
			c.key = key
		}
	}
}

// WithLogger sets the classifier logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDeduper replaces the per-call duplicate tracker factory.
func WithDeduper(fn func() dedupe.Deduper) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.newDeduper = fn
		}
	}
}
