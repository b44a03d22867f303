package service

import (
	"context"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"churchsite/config"
	"churchsite/internal/domain"
	"churchsite/internal/models"
	"churchsite/internal/repository"
	"churchsite/pkg/mailer"
	"churchsite/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a submitted field name to the message shown inline on the
// form. A non-nil map means nothing was persisted and nothing was sent.
type FieldErrors map[string]string

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type PrayerInput struct {
	Name      string `json:"name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Request   string `json:"request" validate:"required"`
	IsPrivate bool   `json:"is_private"`
}

type DonationInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Amount       string `json:"amount" validate:"required"`
	DonationType string `json:"donation_type"`
	IsRecurring  bool   `json:"is_recurring"`
	Notes        string `json:"notes"`
}

// IntakeService runs the validate-then-persist-then-notify pipeline for the
// three public forms. Notification failure is logged and swallowed: the saved
// record is the source of truth.
type IntakeService struct {
	site          *config.SiteConfig
	contactRepo   *repository.ContactRepository
	prayerRepo    *repository.PrayerRepository
	donationRepo  *repository.DonationRepository
	notifier      mailer.Notifier
	payments      payment.Provider
	notifyTimeout time.Duration
	validate      *validator.Validate
}

func NewIntakeService(
	site *config.SiteConfig,
	contactRepo *repository.ContactRepository,
	prayerRepo *repository.PrayerRepository,
	donationRepo *repository.DonationRepository,
	n mailer.Notifier,
	p payment.Provider,
	notifyTimeout time.Duration,
) *IntakeService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if notifyTimeout <= 0 {
		notifyTimeout = 10 * time.Second
	}
	return &IntakeService{
		site:          site,
		contactRepo:   contactRepo,
		prayerRepo:    prayerRepo,
		donationRepo:  donationRepo,
		notifier:      n,
		payments:      p,
		notifyTimeout: notifyTimeout,
		validate:      v,
	}
}

func (s *IntakeService) SubmitContact(ctx context.Context, in ContactInput) (*models.ContactMessage, FieldErrors, error) {
	if ferrs := s.check(in); ferrs != nil {
		return nil, ferrs, nil
	}
	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.contactRepo.Create(msg); err != nil {
		return nil, nil, err
	}
	subject := "New Contact Message: " + msg.Subject
	body := fmt.Sprintf("You have received a new contact message from %s (%s):\n\n%s",
		msg.Name, msg.Email, msg.Message)
	s.send(ctx, []string{s.site.AdminEmail}, subject, body)
	return msg, nil, nil
}

func (s *IntakeService) SubmitPrayerRequest(ctx context.Context, in PrayerInput) (*models.PrayerRequest, FieldErrors, error) {
	if ferrs := s.check(in); ferrs != nil {
		return nil, ferrs, nil
	}
	// Status is always pending at creation regardless of input.
	req := &models.PrayerRequest{
		Name:      in.Name,
		Email:     in.Email,
		Request:   in.Request,
		IsPrivate: in.IsPrivate,
		Status:    domain.PrayerStatusPending,
	}
	if err := s.prayerRepo.Create(req); err != nil {
		return nil, nil, err
	}
	// The submitter is never emailed back; only the office hears about it.
	s.send(ctx, []string{s.site.AdminEmail},
		"New Prayer Request Submitted",
		fmt.Sprintf("A new prayer request has been submitted by %s.", req.Name))
	return req, nil, nil
}

func (s *IntakeService) SubmitDonation(ctx context.Context, in DonationInput) (*models.Donation, FieldErrors, error) {
	ferrs := s.check(in)
	amount, amountErr := parseAmount(in.Amount)
	if amountErr != "" {
		if ferrs == nil {
			ferrs = FieldErrors{}
		}
		if _, dup := ferrs["amount"]; !dup {
			ferrs["amount"] = amountErr
		}
	}
	fund := in.DonationType
	if fund == "" {
		fund = domain.FundGeneral
	}
	if _, ok := domain.DonationFunds[fund]; !ok {
		if ferrs == nil {
			ferrs = FieldErrors{}
		}
		ferrs["donation_type"] = "Select a valid choice."
	}
	if ferrs != nil {
		return nil, ferrs, nil
	}

	d := &models.Donation{
		Name:         in.Name,
		Email:        in.Email,
		Amount:       amount,
		DonationType: fund,
		IsRecurring:  in.IsRecurring,
		Notes:        in.Notes,
	}
	if s.payments != nil {
		receipt, err := s.payments.Charge(ctx, payment.ChargeRequest{
			Name:      d.Name,
			Email:     d.Email,
			Amount:    d.Amount,
			Fund:      d.DonationType,
			Recurring: d.IsRecurring,
		})
		if err != nil {
			return nil, nil, err
		}
		d.TransactionID = receipt.TransactionID
	}
	if err := s.donationRepo.Create(d); err != nil {
		return nil, nil, err
	}

	amountStr := d.Amount.StringFixed(2)
	s.send(ctx, []string{d.Email},
		"Thank You for Your Donation",
		fmt.Sprintf("Dear %s,\n\nThank you for your donation of $%s to our church. Your generosity helps us continue our mission.\n\nBlessings,\nChurch Staff",
			d.Name, amountStr))
	s.send(ctx, []string{s.site.AdminEmail},
		"New Donation: $"+amountStr,
		fmt.Sprintf("A new donation has been made by %s (%s) for $%s to the %s fund.",
			d.Name, d.Email, amountStr, domain.FundDisplay(d.DonationType)))
	return d, nil, nil
}

func (s *IntakeService) check(in interface{}) FieldErrors {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"": "invalid submission"}
	}
	ferrs := FieldErrors{}
	for _, fe := range verrs {
		if _, dup := ferrs[fe.Field()]; dup {
			continue
		}
		ferrs[fe.Field()] = messageFor(fe)
	}
	return ferrs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}

// parseAmount enforces decimal(10,2): positive, at most 2 fraction digits,
// at most 10 digits in total.
func parseAmount(raw string) (decimal.Decimal, string) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, "Enter a valid amount."
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, "Amount must be greater than zero."
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, "Amount cannot have more than 2 decimal places."
	}
	// 10 digits total leaves 8 before the point.
	if amount.GreaterThanOrEqual(decimal.New(1, 8)) {
		return decimal.Zero, "Amount is too large."
	}
	return amount, ""
}

func (s *IntakeService) send(ctx context.Context, recipients []string, subject, body string) {
	if s.notifier == nil {
		return
	}
	sendCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(sendCtx, recipients, subject, body); err != nil {
		log.Printf("intake: notify %v failed: %v", recipients, err)
	}
}
