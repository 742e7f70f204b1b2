package dto

// MetricFilterRequest carries the optional equality filters for /konsolidasi.
// Empty fields are ignored; all empty means match everything.
type MetricFilterRequest struct {
	ServiceName string `json:"SERVICENAME"`
	DisplayName string `json:"DISPLAYNAME"`
	ClientName  string `json:"CLIENTNAME"`
}

type AggregateServiceRequest struct {
	ServiceName string `json:"SERVICENAME"`
}

type AggregateDisplayRequest struct {
	DisplayName string `json:"DISPLAYNAME"`
}

type AggregateClientRequest struct {
	ClientName string `json:"CLIENTNAME"`
}

// DateRangeRequest carries the raw calendar-date bounds for /konsolidasi-by-date.
type DateRangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
