package domain

// Device classes produced by user agent classification.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// DefaultLanguage is assumed when the request carries no usable
// Accept-Language header.
const DefaultLanguage = "en"

// DeliveryContext describes the viewer of a single delivery request. It is
// built fresh per request by the context resolver and passed by value into
// targeting and charging.
type DeliveryContext struct {
	IP       string
	Country  string
	Region   string
	City     string
	Timezone string
	Device   string
	Browser  string
	OS       string
	Language string
}

// GeoKnown reports whether any geo field was resolved.
func (c DeliveryContext) GeoKnown() bool {
	return c.Country != "" || c.Region != "" || c.City != ""
}
