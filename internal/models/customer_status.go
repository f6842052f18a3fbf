package models

// CustomerStatus is the closed set of customer lifecycle states the console understands.
// Anything else the backend sends is CustomerStatusUnknown; the raw string stays on the record.
type CustomerStatus string

const (
	CustomerStatusPending    CustomerStatus = "pending"
	CustomerStatusPendingKYC CustomerStatus = "pending_kyc"
	CustomerStatusApproved   CustomerStatus = "approved"
	CustomerStatusActive     CustomerStatus = "active"
	CustomerStatusRejected   CustomerStatus = "rejected"
	CustomerStatusUnknown    CustomerStatus = ""
)

// CustomerStatusFilterOptions lists the statuses offered by the customer list filter, in display order
var CustomerStatusFilterOptions = []CustomerStatus{
	CustomerStatusPendingKYC,
	CustomerStatusApproved,
	CustomerStatusActive,
	CustomerStatusRejected,
}

// ParseCustomerStatus maps a backend status string onto the closed set
func ParseCustomerStatus(raw string) CustomerStatus {
	switch CustomerStatus(raw) {
	case CustomerStatusPending:
		return CustomerStatusPending
	case CustomerStatusPendingKYC:
		return CustomerStatusPendingKYC
	case CustomerStatusApproved:
		return CustomerStatusApproved
	case CustomerStatusActive:
		return CustomerStatusActive
	case CustomerStatusRejected:
		return CustomerStatusRejected
	default:
		return CustomerStatusUnknown
	}
}

// Actionable reports whether an operator may approve or reject a customer in this state
func (s CustomerStatus) Actionable() bool {
	switch s {
	case CustomerStatusPending, CustomerStatusPendingKYC:
		return true
	case CustomerStatusApproved, CustomerStatusActive, CustomerStatusRejected, CustomerStatusUnknown:
		return false
	}
	return false
}

// IsActive reports whether the customer counts as active on the dashboard
func (s CustomerStatus) IsActive() bool {
	return s == CustomerStatusActive || s == CustomerStatusApproved
}

// Label is the human readable form used by the status filter
func (s CustomerStatus) Label() string {
	switch s {
	case CustomerStatusPending:
		return "Pending"
	case CustomerStatusPendingKYC:
		return "Pending KYC"
	case CustomerStatusApproved:
		return "Approved"
	case CustomerStatusActive:
		return "Active"
	case CustomerStatusRejected:
		return "Rejected"
	case CustomerStatusUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// Tone maps every customer status onto a display tone
func (s CustomerStatus) Tone() Tone {
	switch s {
	case CustomerStatusApproved, CustomerStatusActive:
		return TonePositive
	case CustomerStatusPending, CustomerStatusPendingKYC:
		return ToneWarning
	case CustomerStatusRejected:
		return ToneDanger
	case CustomerStatusUnknown:
		return ToneNeutral
	}
	return ToneNeutral
}

// Decision is an operator's verdict on a pending customer
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision returns the decision named by raw, or false when raw is not a decision
func ParseDecision(raw string) (Decision, bool) {
	switch Decision(raw) {
	case DecisionApprove:
		return DecisionApprove, true
	case DecisionReject:
		return DecisionReject, true
	default:
		return "", false
	}
}

// TargetStatus is the status requested from the backend for the decision
func (d Decision) TargetStatus() CustomerStatus {
	if d == DecisionApprove {
		return CustomerStatusApproved
	}
	return CustomerStatusRejected
}
