package dto

import "encoding/json"

// MetricAggregateRow is one group of a metric aggregation: the grouping key
// plus the four counter sums. Field names the record attribute the group was
// keyed by (SERVICENAME, DISPLAYNAME or CLIENTNAME) and becomes the JSON key
// for Key, matching the document-store output shape.
type MetricAggregateRow struct {
	Field            string
	Key              string
	TotalFailures    int64
	TotalSuccesses   int64
	TotalExceptions  int64
	TotalNumMessages int64
}

func (r MetricAggregateRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		r.Field:            r.Key,
		"totalFailures":    r.TotalFailures,
		"totalSuccesses":   r.TotalSuccesses,
		"totalExceptions":  r.TotalExceptions,
		"totalNumMessages": r.TotalNumMessages,
	})
}
