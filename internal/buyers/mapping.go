package buyers

import (
	"github.com/JaimeStill/market-api/pkg/pagination"
	"github.com/JaimeStill/market-api/pkg/query"
	"github.com/JaimeStill/market-api/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "buyers", "b").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

const defaultSort = "Name"

// Sortable lists the sort keys accepted by buyer listings.
var Sortable = pagination.Sortable{
	"name":       "Name",
	"email":      "Email",
	"created_at": "CreatedAt",
}

func scanBuyer(s repository.Scanner) (Buyer, error) {
	var b Buyer
	err := s.Scan(&b.ID, &b.Name, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}
