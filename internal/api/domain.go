package api

import (
	"github.com/JaimeStill/market-api/internal/buyers"
	"github.com/JaimeStill/market-api/internal/sellers"
	"github.com/JaimeStill/market-api/internal/transactions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Buyers       buyers.System
	Sellers      sellers.System
	Transactions transactions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	buyersSys := buyers.New(db, runtime.Logger)
	sellersSys := sellers.New(db, runtime.Logger)

	transactionsSys := transactions.New(
		transactions.NewLinks(db),
		buyersSys,
		sellersSys,
		runtime.Logger,
	)

	return &Domain{
		Buyers:       buyersSys,
		Sellers:      sellersSys,
		Transactions: transactionsSys,
	}
}
