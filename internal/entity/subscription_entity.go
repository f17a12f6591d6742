// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success" // Must match DB enum 'success'
	PaymentStatusFailed  PaymentStatus = "failed"
)

type SubscriptionPlan struct {
	Id   uuid.UUID
	Name string
	Slug string
	// Max SAML applications, nil = unlimited, 0 = disabled
	SamlApplicationsLimit *int
	IsActive              bool
}

// Quota projects the plan onto the limits the guide catalog reads
func (p *SubscriptionPlan) Quota() SubscriptionQuota {
	return SubscriptionQuota{SamlApplicationsLimit: p.SamlApplicationsLimit}
}

type UserSubscription struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	PlanId             uuid.UUID
	Status             SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	PaymentStatus      PaymentStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// GrantsAccess reports whether the subscription still entitles the user to its plan at now
func (s *UserSubscription) GrantsAccess(now time.Time) bool {
	if !s.CurrentPeriodEnd.After(now) {
		return false
	}
	return s.Status == SubscriptionStatusActive ||
		s.Status == SubscriptionStatusCanceled || // Access retained until period end
		s.PaymentStatus == PaymentStatusPaid
}

// FreePlan is used when a user has no subscription granting access
func FreePlan() *SubscriptionPlan {
	zero := 0
	return &SubscriptionPlan{
		Name:                  "Free Plan",
		Slug:                  "free",
		SamlApplicationsLimit: &zero,
		IsActive:              true,
	}
}
