package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/elbekdesign/storefront/internal/domain/errors"
	"github.com/elbekdesign/storefront/internal/domain/model"
	"github.com/elbekdesign/storefront/internal/server/http/dto"
	"github.com/elbekdesign/storefront/internal/usecase"
)

// DraftHandler drives the order wizard over HTTP.
type DraftHandler struct {
	facade      DraftFacade
	paymentCard string
}

// NewDraftHandler constructs DraftHandler. The payment card number is only
// revealed on the payment step.
func NewDraftHandler(facade DraftFacade, paymentCard string) *DraftHandler {
	return &DraftHandler{facade: facade, paymentCard: paymentCard}
}

// Get handles GET /api/draft.
func (h *DraftHandler) Get(c *gin.Context) {
	draft := h.facade.Draft(CurrentViewer(c).ID)
	c.JSON(http.StatusOK, h.toDraftResponse(draft))
}

// Update handles PATCH /api/draft.
func (h *DraftHandler) Update(c *gin.Context) {
	var req dto.DraftUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.UpdateDraft(CurrentViewer(c).ID, toDraftChanges(req))
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDraftResponse(draft))
}

// Advance handles POST /api/draft/advance.
func (h *DraftHandler) Advance(c *gin.Context) {
	draft, err := h.facade.AdvanceDraft(CurrentViewer(c).ID)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDraftResponse(draft))
}

// Back handles POST /api/draft/back.
func (h *DraftHandler) Back(c *gin.Context) {
	draft, err := h.facade.RetreatDraft(CurrentViewer(c).ID)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDraftResponse(draft))
}

// Submit handles POST /api/draft/submit.
func (h *DraftHandler) Submit(c *gin.Context) {
	order, err := h.facade.SubmitOrder(c.Request.Context(), CurrentViewer(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrSubmitInFlight):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrSubmission):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func (h *DraftHandler) renderDraftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrSubmitInFlight):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toDraftChanges(req dto.DraftUpdateRequest) usecase.DraftChanges {
	changes := usecase.DraftChanges{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		TelegramHandle: req.TelegramHandle,
		Game:           req.Game,
		Message:        req.Message,
		PromoCode:      req.PromoCode,
		Consent:        req.Consent,
	}
	if req.Gender != nil {
		gender := model.Gender(*req.Gender)
		changes.Gender = &gender
	}
	if req.DesignType != nil {
		design := model.DesignType(*req.DesignType)
		changes.DesignType = &design
	}
	return changes
}

func (h *DraftHandler) toDraftResponse(draft *model.Draft) dto.DraftResponse {
	quote := h.facade.DraftQuote(draft)
	resp := dto.DraftResponse{
		Step:           draft.Step,
		Phase:          string(draft.Phase),
		FirstName:      draft.FirstName,
		LastName:       draft.LastName,
		Gender:         string(draft.Gender),
		Phone:          draft.Phone,
		TelegramHandle: draft.TelegramHandle,
		DesignType:     string(draft.DesignType),
		Game:           draft.Game,
		Message:        draft.Message,
		PromoCode:      draft.PromoCode,
		Consent:        draft.Consent,
		Quote: dto.QuoteResponse{
			BasePrice: quote.BasePrice,
			Discount:  quote.Discount,
			Total:     quote.Total,
			Promo:     quote.Promo.String(),
		},
	}
	if draft.Step == model.DraftStepPayment {
		resp.PaymentCard = h.paymentCard
	}
	return resp
}
