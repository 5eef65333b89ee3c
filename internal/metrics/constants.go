package metrics

// Metric names
const (
	MetricNameCombinationsPrepared = "anvil_combinations_prepared_total"
	MetricNameExtractions          = "anvil_extractions_total"
	MetricNameRepairCost           = "anvil_repair_cost"
	MetricNameDeferredWrites       = "anvil_deferred_cost_writes_total"
	MetricNameAuditErrors          = "anvil_audit_errors_total"
)

// Help text
const (
	HelpTextCombinationsPrepared = "Total number of anvil combinations prepared, by outcome"
	HelpTextExtractions          = "Total number of anvil result clicks, by decision"
	HelpTextRepairCost           = "Repair cost computed for prepared combinations"
	HelpTextDeferredWrites       = "Total number of deferred repair-cost writes applied"
	HelpTextAuditErrors          = "Total number of failed audit log writes"
)

// Label names
const (
	LabelOutcome  = "outcome"
	LabelDecision = "decision"
)

// Outcome label values
const (
	OutcomeMerged      = "merged"
	OutcomeUnmergeable = "unmergeable"
	OutcomeIncomplete  = "incomplete"
)

// Decision label values
const (
	DecisionAllowed        = "allowed"
	DecisionDeniedConflict = "denied_conflict"
	DecisionIgnored        = "ignored"
)

// RepairCostBuckets covers the vanilla range up to "too expensive" and beyond.
var RepairCostBuckets = []float64{0, 1, 3, 7, 15, 31, 39, 63, 127}
