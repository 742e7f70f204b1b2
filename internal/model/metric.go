package model

// Field names of a metric record as delivered by the upstream monitoring API.
// Records are stored as-is, so unknown upstream fields pass through untouched.
const (
	FieldServiceName      = "SERVICENAME"
	FieldDisplayName      = "DISPLAYNAME"
	FieldClientName       = "CLIENTNAME"
	FieldCreatedAt        = "createdAt"
	FieldTotalFailures    = "totalFailures"
	FieldTotalSuccesses   = "totalSuccesses"
	FieldTotalExceptions  = "totalExceptions"
	FieldTotalNumMessages = "totalNumMessages"
)

// MetricRecord is one row of an upstream service health snapshot. The shape
// is open: besides the named fields above, whatever the upstream returns is
// kept verbatim. FieldCreatedAt is stamped exactly once, at ingestion.
type MetricRecord map[string]interface{}

// ServiceName returns the record's SERVICENAME, or "" when absent.
func (r MetricRecord) ServiceName() string {
	if v, ok := r[FieldServiceName].(string); ok {
		return v
	}
	return ""
}

// Dimension identifies a grouping axis for metric aggregation.
type Dimension string

const (
	DimensionService Dimension = "service"
	DimensionDisplay Dimension = "display"
	DimensionClient  Dimension = "client"
)

// Field maps a dimension onto the record field it groups by.
func (d Dimension) Field() (string, bool) {
	switch d {
	case DimensionService:
		return FieldServiceName, true
	case DimensionDisplay:
		return FieldDisplayName, true
	case DimensionClient:
		return FieldClientName, true
	}
	return "", false
}
