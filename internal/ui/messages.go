package ui

// reportDeliveredMsg carries the outcome of handing a report to the sink
type reportDeliveredMsg struct {
	sink   string
	report string
	count  int
	err    error
}
