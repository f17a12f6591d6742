package guide

import (
	"slices"
	"sort"
	"strings"

	"guide-catalog-be/internal/entity"
)

// FilterOptions narrows the visible guides. A nil *FilterOptions, empty
// Categories and an empty Keyword all mean "no constraint".
type FilterOptions struct {
	Categories []entity.Category
	Keyword    string
}

// CacheKey renders the options as a stable string. Category order and
// duplicates do not change the result, so they do not change the key.
func (f *FilterOptions) CacheKey() string {
	if f == nil {
		return "|"
	}
	tokens := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		tokens = append(tokens, string(c))
	}
	sort.Strings(tokens)
	tokens = slices.Compact(tokens)
	return strings.Join(tokens, ",") + "|" + strings.ToLower(f.Keyword)
}

// FilterGuides applies keyword and category filters to visible. The result
// is a subsequence of visible in the same order.
func FilterGuides(visible []entity.Guide, filters *FilterOptions) []entity.Guide {
	var categories []entity.Category
	var keyword string
	if filters != nil {
		categories = filters.Categories
		keyword = filters.Keyword
	}

	hasCategories := len(categories) > 0
	hasKeyword := keyword != ""

	switch {
	case !hasCategories && !hasKeyword:
		return visible

	case hasKeyword && !hasCategories:
		return keep(visible, func(g entity.Guide) bool {
			return nameMatches(g, keyword)
		})

	case hasCategories && !hasKeyword:
		return keep(visible, func(g entity.Guide) bool {
			return slices.ContainsFunc(categories, func(c entity.Category) bool {
				return c == entity.Category(g.Target) ||
					(g.IsFeatured && c == entity.CategoryFeatured) ||
					(g.IsThirdParty && c == entity.CategoryThirdParty)
			})
		})

	case hasCategories && hasKeyword:
		// The ThirdParty token is not honored here. Existing clients depend on
		// this, so changing it needs a deliberate review.
		return keep(visible, func(g entity.Guide) bool {
			return nameMatches(g, keyword) &&
				slices.ContainsFunc(categories, func(c entity.Category) bool {
					return c == entity.Category(g.Target) ||
						(g.IsFeatured && c == entity.CategoryFeatured)
				})
		})
	}

	return []entity.Guide{}
}

func nameMatches(g entity.Guide, keyword string) bool {
	return strings.Contains(strings.ToLower(g.Name), strings.ToLower(keyword))
}

func keep(guides []entity.Guide, pred func(entity.Guide) bool) []entity.Guide {
	out := make([]entity.Guide, 0, len(guides))
	for _, g := range guides {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}
