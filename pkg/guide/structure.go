package guide

import (
	"guide-catalog-be/internal/entity"
)

// Structure filters visible and groups the result into display buckets.
// A third-party guide lands in ThirdParty instead of its native bucket.
// A featured guide is also added to Featured, whatever its other bucket.
func Structure(visible []entity.Guide, filters *FilterOptions) entity.StructuredMetadata {
	structured := entity.NewStructuredMetadata()

	for _, g := range FilterGuides(visible, filters) {
		if g.Target == entity.TargetAPI {
			continue
		}

		if g.IsThirdParty {
			structured.Append(entity.CategoryThirdParty, g)
		} else {
			structured.Append(entity.Category(g.Target), g)
		}

		if g.IsFeatured {
			structured.Append(entity.CategoryFeatured, g)
		}
	}

	return structured
}
