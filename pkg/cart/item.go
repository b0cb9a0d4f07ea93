package cart

import (
	"github.com/google/uuid"

	"github.com/ecmarket/shopclient/pkg/api"
)

// Status describes the lifecycle of the cached cart mirror.
type Status string

const (
	// StatusEmpty is the initial state and the state after the session ends.
	StatusEmpty Status = "empty"
	// StatusLoading indicates a fetch is in flight. Previously mirrored items
	// remain readable until the fetch settles.
	StatusLoading Status = "loading"
	// StatusReady indicates the mirror reflects a successful fetch. A ready
	// cart may contain zero items.
	StatusReady Status = "ready"
	// StatusError indicates the last fetch failed. Items are cleared.
	StatusError Status = "error"
)

// Item is a single cart line mirrored from the marketplace.
type Item struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       float64
	ImageURL    string
	CreatedAt   string
	UpdatedAt   string
}

// Subtotal returns the line price for this item.
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

func itemFromAPI(ci api.CartItem) Item {
	return Item{
		ID:          ci.ID,
		ProductID:   ci.ProductID,
		ProductName: ci.ProductName,
		Quantity:    ci.Quantity,
		Price:       ci.Price,
		ImageURL:    ci.ImageURL,
		CreatedAt:   ci.CreatedAt,
		UpdatedAt:   ci.UpdatedAt,
	}
}

func itemsFromAPI(cis []api.CartItem) []Item {
	items := make([]Item, 0, len(cis))
	for _, ci := range cis {
		items = append(items, itemFromAPI(ci))
	}
	return items
}
