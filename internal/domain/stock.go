package domain

// Well-known stock categories offered by the client. The set is open; the
// server stores whatever string it is given.
const (
	CategoryElectronics = "Electronics"
	CategoryFurniture   = "Furniture"
	CategoryStationery  = "Stationery"
)

// StockItem is one inventory line in the stock_items table.
type StockItem struct {
	ID         int64
	Name       string
	Category   string
	Department string
	Quantity   int
}
