package domain

// UserSegment is a named customer class. System segments are protected from
// deletion; the default segment is used when a request carries no segment.
type UserSegment struct {
	ID          string
	Name        string
	Priority    int64
	PricingTier string
	IsDefault   bool
	IsSystem    bool
}
