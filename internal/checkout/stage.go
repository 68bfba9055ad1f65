package checkout

// Stage is the current step of the checkout flow.
type Stage string

const (
	StageShipping Stage = "shipping"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
	StagePlaced   Stage = "placed"
)

func (s Stage) IsTerminal() bool {
	return s == StagePlaced
}

// String representation (for logging)
func (s Stage) String() string {
	return string(s)
}
