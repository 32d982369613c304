package metrics

import "time"

//go:generate mockery --name Provider --dir . --output ../../mocks/metrics --outpkg mocks --filename Provider.go
type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementAuthOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
