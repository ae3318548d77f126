package create_booking

import (
	"context"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
)

// WizardSubmitter адаптирует use case под wizard.Submitter
// Мастер и прямой API-вызов проходят через одну и ту же валидацию
type WizardSubmitter struct {
	uc *UseCase
}

// NewWizardSubmitter создает адаптер для мастера бронирования
func NewWizardSubmitter(uc *UseCase) *WizardSubmitter {
	return &WizardSubmitter{uc: uc}
}

// Submit реализует wizard.Submitter
func (s *WizardSubmitter) Submit(ctx context.Context, req wizard.SubmitRequest) (string, error) {
	resp, err := s.uc.Execute(ctx, &Request{
		RequestID:  req.RequestID,
		TourSlug:   req.TourSlug,
		Date:       req.Date,
		Time:       req.Time,
		Travellers: req.Travellers,
		Contact:    req.Contact,
	})
	if err != nil {
		return "", err
	}
	return resp.BookingID, nil
}
