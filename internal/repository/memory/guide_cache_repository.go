package memory

import (
	"guide-catalog-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// GuideCacheRepository memoizes derived guide lists. The corpus is small and
// fixed, so entries never expire and nothing is evicted.
type GuideCacheRepository struct {
	cache *cache.Cache
}

func NewGuideCacheRepository() *GuideCacheRepository {
	return &GuideCacheRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *GuideCacheRepository) SaveGuides(key string, guides []entity.Guide) {
	r.cache.Set("guides:"+key, guides, cache.NoExpiration)
}

func (r *GuideCacheRepository) GetGuides(key string) ([]entity.Guide, bool) {
	if x, found := r.cache.Get("guides:" + key); found {
		return x.([]entity.Guide), true
	}
	return nil, false
}

func (r *GuideCacheRepository) SaveStructured(key string, structured entity.StructuredMetadata) {
	r.cache.Set("structured:"+key, structured, cache.NoExpiration)
}

func (r *GuideCacheRepository) GetStructured(key string) (entity.StructuredMetadata, bool) {
	if x, found := r.cache.Get("structured:" + key); found {
		return x.(entity.StructuredMetadata), true
	}
	return entity.StructuredMetadata{}, false
}

func (r *GuideCacheRepository) Count() int {
	return r.cache.ItemCount()
}
