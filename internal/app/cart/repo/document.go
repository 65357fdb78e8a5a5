package repo

import (
	"time"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// cartDocument is the stored form of a cart.
type cartDocument struct {
	Lines     []*domain.CartLine `json:"lines"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func (d *cartDocument) index(productID string) int {
	for i, l := range d.Lines {
		if l.ProductID() == productID {
			return i
		}
	}
	return -1
}

func (d *cartDocument) put(line *domain.CartLine) {
	if i := d.index(line.ProductID()); i >= 0 {
		d.Lines[i] = line
		return
	}
	d.Lines = append(d.Lines, line)
}

func (d *cartDocument) remove(productID string) bool {
	i := d.index(productID)
	if i < 0 {
		return false
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return true
}
