package domain

type PurchaseType string

const (
	PurchaseTypeSale PurchaseType = "sale"
	PurchaseTypeRent PurchaseType = "rent"
)

// LineItem is one (product, purchase type) entry in a cart. UnitPrice is in
// paise and, for rentals, already includes the per-day multiplication done by
// the catalog collaborator before the item reaches the cart.
type LineItem struct {
	ProductID    string       `json:"product_id"`
	Name         string       `json:"name"`
	UnitPrice    int64        `json:"unit_price"`
	Quantity     int32        `json:"quantity"`
	PurchaseType PurchaseType `json:"purchase_type"`
	RentalDays   int32        `json:"rental_days"`
}

// Key identifies a line for merge and dedup purposes. Two lines for the same
// product with different purchase types are distinct.
func (li LineItem) Key() LineKey {
	return LineKey{ProductID: li.ProductID, PurchaseType: li.PurchaseType}
}

type LineKey struct {
	ProductID    string
	PurchaseType PurchaseType
}

// Cart is an ordered line-item list, unique by (product, purchase type).
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add merges the item into the cart: an existing line with the same key has
// its quantity incremented, otherwise the item is appended.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].Key() == item.Key() {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line matching the composite key. Removal uses the same
// key Add dedups by, so a sale line and a rent line for one product are
// removed independently.
func (c *Cart) Remove(productID string, purchaseType PurchaseType) bool {
	key := LineKey{ProductID: productID, PurchaseType: purchaseType}
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity on the matching line. Quantities below one
// are the caller's signal to Remove instead; this method rejects them.
func (c *Cart) UpdateQuantity(productID string, purchaseType PurchaseType, quantity int32) bool {
	if quantity < 1 {
		return false
	}
	key := LineKey{ProductID: productID, PurchaseType: purchaseType}
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Count is the sum of all line quantities.
func (c *Cart) Count() int32 {
	var n int32
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Total is the sum of unit price times quantity over all lines, in paise.
func (c *Cart) Total() int64 {
	var total int64
	for _, li := range c.Items {
		total += li.UnitPrice * int64(li.Quantity)
	}
	return total
}

// HasRentalItems reports whether any line is a rental.
func (c *Cart) HasRentalItems() bool {
	for _, li := range c.Items {
		if li.PurchaseType == PurchaseTypeRent {
			return true
		}
	}
	return false
}

// Merge folds another cart into this one line by line, summing quantities on
// matching keys and appending unknown lines verbatim. The source cart is not
// modified; clearing it is the caller's responsibility.
func (c *Cart) Merge(other *Cart) {
	for _, li := range other.Items {
		c.Add(li)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}
