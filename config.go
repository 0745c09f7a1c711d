package depot

import "github.com/rs/zerolog"

// Config holds global configuration for the storage system
var Config config = config{
	initialArchetypeCapacity: 256,
	signatureCacheCapacity:   1024,
	logger:                   zerolog.Nop(),
}

type config struct {
	initialArchetypeCapacity int
	signatureCacheCapacity   int
	logger                   zerolog.Logger
}

// SetLogger routes the library's debug/trace events to the given logger.
// Logging is off by default.
func (c *config) SetLogger(l zerolog.Logger) {
	c.logger = l
}

// SetInitialArchetypeCapacity sets the row capacity new archetypes start with.
// Capacity still doubles on demand, so this only tunes up-front allocation.
func (c *config) SetInitialArchetypeCapacity(n int) {
	if n > 0 {
		c.initialArchetypeCapacity = n
	}
}

// SetSignatureCacheCapacity bounds each registry's signature cache. Applies to
// registries created afterward.
func (c *config) SetSignatureCacheCapacity(n int) {
	if n > 0 {
		c.signatureCacheCapacity = n
	}
}
