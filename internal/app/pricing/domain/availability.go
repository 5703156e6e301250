package domain

// ProductAvailability is the per-(product, zone) sellability flag.
// Absence of a record means the product is available (whitelist by default);
// only an explicit IsSellable=false blocks a sale.
type ProductAvailability struct {
	ProductID  string
	ZoneID     string
	IsSellable bool
	Reason     string
}
