package usecase

import (
	"unicode/utf8"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/domain/repository"
	"github.com/elbekdesign/storefront/internal/pkg/textinput"
	"github.com/elbekdesign/storefront/internal/pricing"
)

// messageLimit caps the free-text message length, in runes.
const messageLimit = 1000

// DraftChanges is a partial update to a draft; nil fields are untouched.
type DraftChanges struct {
	FirstName      *string
	LastName       *string
	Gender         *model.Gender
	Phone          *string
	TelegramHandle *string
	DesignType     *model.DesignType
	Game           *string
	Message        *string
	PromoCode      *string
	Consent        *bool
}

// DraftUseCase drives the order wizard: a strictly linear forward walk with
// unconditional backward navigation. Every transition runs as a single
// atomic store update, so concurrent requests for one viewer serialize.
type DraftUseCase struct {
	drafts repository.DraftStore
}

// NewDraftUseCase constructs DraftUseCase.
func NewDraftUseCase(drafts repository.DraftStore) *DraftUseCase {
	return &DraftUseCase{drafts: drafts}
}

// Get returns the viewer's draft, creating a fresh one on first access.
func (u *DraftUseCase) Get(viewerID string) *model.Draft {
	d, _ := u.drafts.Update(viewerID, func(*model.Draft) error { return nil })
	return d
}

// Update applies changes to the viewer's draft. Contact fields pass through
// their normalizers; enum fields are checked; the message is truncated at the
// limit. A failed submission returns to editing on the first touch.
func (u *DraftUseCase) Update(viewerID string, changes DraftChanges) (*model.Draft, error) {
	if changes.Gender != nil && !changes.Gender.Valid() {
		return nil, domainErrors.ErrValidation
	}
	if changes.DesignType != nil && !changes.DesignType.Valid() {
		return nil, domainErrors.ErrValidation
	}
	if changes.Game != nil && *changes.Game != "" && !model.KnownGame(*changes.Game) {
		return nil, domainErrors.ErrValidation
	}

	return u.drafts.Update(viewerID, func(d *model.Draft) error {
		if d.Phase == model.DraftPhaseSubmitting {
			return domainErrors.ErrSubmitInFlight
		}

		if changes.FirstName != nil {
			d.FirstName = *changes.FirstName
		}
		if changes.LastName != nil {
			d.LastName = *changes.LastName
		}
		if changes.Gender != nil {
			d.Gender = *changes.Gender
		}
		if changes.Phone != nil {
			d.Phone = textinput.Phone(*changes.Phone)
		}
		if changes.TelegramHandle != nil {
			d.TelegramHandle = textinput.Handle(*changes.TelegramHandle)
		}
		if changes.DesignType != nil {
			d.DesignType = *changes.DesignType
		}
		if changes.Game != nil {
			d.Game = *changes.Game
		}
		if changes.Message != nil {
			d.Message = truncate(*changes.Message, messageLimit)
		}
		if changes.PromoCode != nil {
			d.PromoCode = *changes.PromoCode
		}
		if changes.Consent != nil {
			d.Consent = *changes.Consent
		}

		if d.Phase == model.DraftPhaseFailed {
			d.Phase = model.DraftPhaseEditing
		}
		return nil
	})
}

// Advance moves the draft one step forward if the current step's required
// fields validate. The payment step does not advance; it submits.
func (u *DraftUseCase) Advance(viewerID string) (*model.Draft, error) {
	return u.drafts.Update(viewerID, func(d *model.Draft) error {
		if d.Phase == model.DraftPhaseSubmitting {
			return domainErrors.ErrSubmitInFlight
		}

		switch d.Step {
		case model.DraftStepIdentity:
			if d.FirstName == "" || !textinput.PhoneComplete(d.Phone) || utf8.RuneCountInString(d.TelegramHandle) < 2 {
				return domainErrors.ErrValidation
			}
		case model.DraftStepDesign:
			if d.Game == "" {
				return domainErrors.ErrValidation
			}
		default:
			return domainErrors.ErrValidation
		}

		d.Step++
		return nil
	})
}

// Back retreats one step unconditionally. At the first step it is a no-op.
func (u *DraftUseCase) Back(viewerID string) (*model.Draft, error) {
	return u.drafts.Update(viewerID, func(d *model.Draft) error {
		if d.Phase == model.DraftPhaseSubmitting {
			return domainErrors.ErrSubmitInFlight
		}
		if d.Step > model.DraftStepIdentity && d.Step <= model.DraftStepPayment {
			d.Step--
		}
		return nil
	})
}

// BeginSubmit validates the payment step and marks the draft submitting.
// The check and the phase flip happen inside one store update, so exactly
// one submission can be in flight per draft.
func (u *DraftUseCase) BeginSubmit(viewerID string) (*model.Draft, error) {
	return u.drafts.Update(viewerID, func(d *model.Draft) error {
		if d.Phase == model.DraftPhaseSubmitting {
			return domainErrors.ErrSubmitInFlight
		}
		if d.Step != model.DraftStepPayment {
			return domainErrors.ErrValidation
		}
		if !d.Consent {
			return domainErrors.ErrValidation
		}
		d.Phase = model.DraftPhaseSubmitting
		return nil
	})
}

// FinishSubmit records the submission outcome. Success discards the draft;
// failure keeps every field so the viewer can retry without re-entering data.
func (u *DraftUseCase) FinishSubmit(viewerID string, ok bool) {
	if ok {
		u.drafts.Delete(viewerID)
		return
	}
	if _, found := u.drafts.Get(viewerID); !found {
		return
	}
	_, _ = u.drafts.Update(viewerID, func(d *model.Draft) error {
		d.Phase = model.DraftPhaseFailed
		return nil
	})
}

// Quote computes the current price for the draft's category and promo code.
func (u *DraftUseCase) Quote(d *model.Draft) pricing.Quote {
	return pricing.QuoteFor(d.DesignType, d.PromoCode)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
