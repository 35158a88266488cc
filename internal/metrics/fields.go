package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrProvider = "provider"
)
