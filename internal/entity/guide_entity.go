// FILE: internal/entity/guide_entity.go
// Domain entities for the application guide catalog
package entity

import "errors"

var ErrGuideNotFound = errors.New("guide not found")

// Target is the platform a guide documents
type Target string

const (
	TargetTraditional      Target = "Traditional"
	TargetSPA              Target = "SPA"
	TargetNative           Target = "Native"
	TargetMachineToMachine Target = "MachineToMachine"
	TargetProtected        Target = "Protected"
	TargetSAML             Target = "SAML"
	TargetAPI              Target = "API" // Not an application guide
)

// Category is a filter token and a display bucket name
type Category string

const (
	CategoryFeatured         Category = "featured"
	CategoryTraditional      Category = "Traditional"
	CategorySPA              Category = "SPA"
	CategoryNative           Category = "Native"
	CategoryMachineToMachine Category = "MachineToMachine"
	CategoryProtected        Category = "Protected"
	CategorySAML             Category = "SAML"
	CategoryThirdParty       Category = "ThirdParty"
)

// Categories lists every bucket in display order
var Categories = []Category{
	CategoryFeatured,
	CategoryTraditional,
	CategorySPA,
	CategoryNative,
	CategoryMachineToMachine,
	CategoryProtected,
	CategorySAML,
	CategoryThirdParty,
}

// Guide is one catalog entry. Values are never mutated after the corpus is built.
type Guide struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Target       Target `json:"target"`
	IsCloud      bool   `json:"is_cloud"`       // Requires a hosted environment
	IsDevFeature bool   `json:"is_dev_feature"` // Requires dev features
	IsFeatured   bool   `json:"is_featured"`
	IsThirdParty bool   `json:"is_third_party"`
}

// Environment holds process-wide flags, read once at startup
type Environment struct {
	IsCloud              bool
	IsDevFeaturesEnabled bool
}

// SubscriptionQuota is the slice of the subscription quota the catalog depends on.
// A nil SamlApplicationsLimit means the limit is unknown.
type SubscriptionQuota struct {
	SamlApplicationsLimit *int `json:"saml_applications_limit"`
}

// StructuredMetadata groups guides into the fixed display buckets.
// Every bucket is a non-nil slice.
type StructuredMetadata struct {
	Featured         []Guide `json:"featured"`
	Traditional      []Guide `json:"Traditional"`
	SPA              []Guide `json:"SPA"`
	Native           []Guide `json:"Native"`
	MachineToMachine []Guide `json:"MachineToMachine"`
	Protected        []Guide `json:"Protected"`
	SAML             []Guide `json:"SAML"`
	ThirdParty       []Guide `json:"ThirdParty"`
}

func NewStructuredMetadata() StructuredMetadata {
	return StructuredMetadata{
		Featured:         []Guide{},
		Traditional:      []Guide{},
		SPA:              []Guide{},
		Native:           []Guide{},
		MachineToMachine: []Guide{},
		Protected:        []Guide{},
		SAML:             []Guide{},
		ThirdParty:       []Guide{},
	}
}

// Bucket returns the guides in the named bucket, or nil for an unknown category
func (m *StructuredMetadata) Bucket(c Category) []Guide {
	if p := m.bucketRef(c); p != nil {
		return *p
	}
	return nil
}

// Append adds a guide to the named bucket. Unknown categories are ignored.
func (m *StructuredMetadata) Append(c Category, g Guide) {
	if p := m.bucketRef(c); p != nil {
		*p = append(*p, g)
	}
}

func (m *StructuredMetadata) bucketRef(c Category) *[]Guide {
	switch c {
	case CategoryFeatured:
		return &m.Featured
	case CategoryTraditional:
		return &m.Traditional
	case CategorySPA:
		return &m.SPA
	case CategoryNative:
		return &m.Native
	case CategoryMachineToMachine:
		return &m.MachineToMachine
	case CategoryProtected:
		return &m.Protected
	case CategorySAML:
		return &m.SAML
	case CategoryThirdParty:
		return &m.ThirdParty
	}
	return nil
}

// Clone copies every bucket so the result shares no backing arrays with m
func (m StructuredMetadata) Clone() StructuredMetadata {
	out := NewStructuredMetadata()
	for _, c := range Categories {
		dst := out.bucketRef(c)
		*dst = append(*dst, m.Bucket(c)...)
	}
	return out
}
