package guide

import (
	"guide-catalog-be/internal/entity"
)

// VisibleGuides returns the application guides that may be shown at all,
// before any user query. Corpus order is kept.
func VisibleGuides(corpus []entity.Guide, env entity.Environment, quota entity.SubscriptionQuota) []entity.Guide {
	visible := make([]entity.Guide, 0, len(corpus))
	for _, g := range corpus {
		if g.Target == entity.TargetAPI {
			continue
		}
		if g.IsCloud && !env.IsCloud {
			continue
		}
		if g.IsDevFeature && !env.IsDevFeaturesEnabled {
			continue
		}
		if g.Target == entity.TargetSAML && !samlAllowed(env, quota) {
			continue
		}
		visible = append(visible, g)
	}
	return visible
}

// SAML guides need cloud, dev features and a limit that is not 0.
// An unknown limit counts as allowed.
func samlAllowed(env entity.Environment, quota entity.SubscriptionQuota) bool {
	if !env.IsCloud || !env.IsDevFeaturesEnabled {
		return false
	}
	return quota.SamlApplicationsLimit == nil || *quota.SamlApplicationsLimit != 0
}

// ApiGuides returns the API guides of the corpus. They are not gated by environment.
func ApiGuides(corpus []entity.Guide) []entity.Guide {
	api := make([]entity.Guide, 0)
	for _, g := range corpus {
		if g.Target == entity.TargetAPI {
			api = append(api, g)
		}
	}
	return api
}
