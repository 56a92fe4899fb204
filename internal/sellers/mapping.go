package sellers

import (
	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/JaimeStill/market-api/pkg/query"
	"github.com/JaimeStill/market-api/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sellers", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "Name"

// Sortable lists the sort keys accepted by seller listings.
var Sortable = pagination.Sortable{
	"name":       "Name",
	"email":      "Email",
	"created_at": "CreatedAt",
}

func scanSeller(sc repository.Scanner) (Seller, error) {
	var s Seller
	err := sc.Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
