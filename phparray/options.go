package phparray

import (
	"hash/fnv"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultCapacity = 8
	minCapacity     = 2
)

// HashFunc maps a key to an integer. The table reduces it with a
// non-negative modulo, so any sign is fine.
type HashFunc func(key string) int

// FNV32a is the default HashFunc.
func FNV32a(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32())
}

type config struct {
	capacity     int
	hash         HashFunc
	logger       *log.Entry
	completeSort bool
}

type Option func(*config)

func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		if f != nil {
			c.hash = f
		}
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCompleteSort makes Sort keep every element. Without it Sort drops the
// last sorted element, matching the historical behaviour of the container.
func WithCompleteSort() Option {
	return func(c *config) {
		c.completeSort = true
	}
}

func newConfig(opts []Option) config {
	c := config{
		capacity: DefaultCapacity,
		hash:     FNV32a,
		logger:   log.WithFields(log.Fields{"component": "phparray"}),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity < minCapacity {
		c.logger.WithFields(log.Fields{"requested": c.capacity, "used": minCapacity}).Warn("capacity too small")
		c.capacity = minCapacity
	}
	return c
}
