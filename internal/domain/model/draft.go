package model

// Wizard step numbers. Steps 1..3 collect input, step 4 is the terminal
// confirmation position reached only through a successful submission.
const (
	DraftStepIdentity = 1
	DraftStepDesign   = 2
	DraftStepPayment  = 3
	DraftStepDone     = 4
)

// DraftPhase tracks a draft through submission.
type DraftPhase string

const (
	DraftPhaseEditing    DraftPhase = "EDITING"
	DraftPhaseSubmitting DraftPhase = "SUBMITTING"
	DraftPhaseSubmitted  DraftPhase = "SUBMITTED"
	DraftPhaseFailed     DraftPhase = "FAILED"
)

// Draft is the in-progress order a viewer composes across the wizard.
// Transient: it lives only in the session store and is discarded once
// submitted.
type Draft struct {
	Step  int
	Phase DraftPhase

	FirstName      string
	LastName       string
	Gender         Gender
	Phone          string
	TelegramHandle string

	DesignType DesignType
	Game       string
	Message    string

	PromoCode string
	Consent   bool
}

// NewDraft returns a draft positioned at the first step with the same
// defaults the order form starts from.
func NewDraft() *Draft {
	return &Draft{
		Step:           DraftStepIdentity,
		Phase:          DraftPhaseEditing,
		Gender:         GenderMale,
		Phone:          "+998",
		TelegramHandle: "@",
		DesignType:     DesignTypePreview,
	}
}
