package unitofwork

import (
	"guide-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	SubscriptionRepository() contract.SubscriptionRepository
}
