package models

// Tone is the colour family a status badge is rendered in
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneWarning
	ToneDanger
	ToneInfo
)

// Account and transfer statuses the console colours explicitly
const (
	AccountStatusOpen   = "open"
	AccountStatusClosed = "closed"

	TransferStatusCompleted  = "completed"
	TransferStatusProcessing = "processing"
	TransferStatusFailed     = "failed"
)

// StatusTone returns the tone for any customer, account or transfer status.
// Statuses outside the known sets are ToneNeutral.
func StatusTone(status string) Tone {
	if kind := ParseCustomerStatus(status); kind != CustomerStatusUnknown {
		return kind.Tone()
	}

	switch status {
	case AccountStatusOpen, TransferStatusCompleted:
		return TonePositive
	case TransferStatusProcessing:
		return ToneInfo
	case TransferStatusFailed:
		return ToneDanger
	case AccountStatusClosed:
		return ToneNeutral
	default:
		return ToneNeutral
	}
}

// Class returns the badge background/text class pair for the tone
func (t Tone) Class() string {
	switch t {
	case TonePositive:
		return "bg-primary-50 text-primary-700"
	case ToneWarning:
		return "bg-accent-50 text-accent-700"
	case ToneDanger:
		return "bg-red-50 text-red-700"
	case ToneInfo:
		return "bg-blue-50 text-blue-700"
	case ToneNeutral:
		return "bg-dark-100 text-dark-700"
	}
	return "bg-dark-100 text-dark-700"
}
