// FILE: internal/dto/guide_dto.go
// DTOs for guide catalog queries
package dto

import (
	"strings"

	"guide-catalog-be/internal/entity"
	"guide-catalog-be/pkg/guide"
)

// GuideFilterRequest is parsed from ?categories=SPA,featured&keyword=react
type GuideFilterRequest struct {
	Categories []string `json:"categories" validate:"omitempty,dive,oneof=featured Traditional SPA Native MachineToMachine Protected SAML ThirdParty"`
	Keyword    string   `json:"keyword" validate:"max=100"`
}

// NewGuideFilterRequest splits the comma separated categories parameter
func NewGuideFilterRequest(categories, keyword string) GuideFilterRequest {
	req := GuideFilterRequest{Keyword: strings.TrimSpace(keyword)}
	for _, c := range strings.Split(categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			req.Categories = append(req.Categories, c)
		}
	}
	return req
}

func (r GuideFilterRequest) ToFilterOptions() *guide.FilterOptions {
	if len(r.Categories) == 0 && r.Keyword == "" {
		return nil
	}
	opts := &guide.FilterOptions{Keyword: r.Keyword}
	for _, c := range r.Categories {
		opts.Categories = append(opts.Categories, entity.Category(c))
	}
	return opts
}
