package bootstrap

import (
	"github.com/code1iners/ce1pers/pkg/cache"
	"github.com/code1iners/ce1pers/pkg/oauth2"
)

// InitStateStorage keeps issued state in Redis when a cache is available and in
// process memory otherwise.
func InitStateStorage(c cache.Cache) oauth2.StateStorage {
	if c == nil {
		return oauth2.NewInMemoryStorage()
	}
	return oauth2.NewCacheStorage(c)
}
