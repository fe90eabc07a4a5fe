package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/metrics"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ComplaintService interface {
	FileComplaint(ctx context.Context, claims *models.Claims, req *models.FileComplaintRequest) (*models.Complaint, error)
	GetComplaint(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Complaint, error)
	ListMyComplaints(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Complaint, int, error)
	ListComplaints(ctx context.Context, status models.ComplaintStatus, page, size int) ([]*models.Complaint, int, error)
	UpdateComplaintStatus(ctx context.Context, id uuid.UUID, req *models.UpdateComplaintStatusRequest) (*models.Complaint, error)
}

type complaintService struct {
	repo         repository.ComplaintRepository
	orderRepo    repository.OrderRepository
	warrantyRepo repository.WarrantyRepository
	userRepo     repository.UserRepository
	notifier     NotificationService
	email        EmailSettings
	policy       *bluemonday.Policy
	now          func() time.Time
}

func NewComplaintService(repo repository.ComplaintRepository, orderRepo repository.OrderRepository,
	warrantyRepo repository.WarrantyRepository, userRepo repository.UserRepository, notifier NotificationService, email EmailSettings,
) ComplaintService {
	return &complaintService{
		repo:         repo,
		orderRepo:    orderRepo,
		warrantyRepo: warrantyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		email:        email,
		policy:       bluemonday.StrictPolicy(),
		now:          time.Now,
	}
}

// NewTicketNumber returns CMP-YYYYMMDD-xxxxxx.
func NewTicketNumber(now time.Time) string {
	return fmt.Sprintf("CMP-%s-%s", now.Format("20060102"), utils.ShortCode(6))
}

// maxSubjectRunes matches complaints.subject VARCHAR(150).
const maxSubjectRunes = 150

// sanitize drops markup but stores plain text: JSON and html/template encode
// on output, so keeping bluemonday's entities would escape them twice.
func (s *complaintService) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}

func (s *complaintService) FileComplaint(ctx context.Context, claims *models.Claims, req *models.FileComplaintRequest) (*models.Complaint, error) {
	if req.OrderID != nil {
		order, err := s.orderRepo.GetOrderByID(ctx, *req.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, appErrors.NotFoundError("Order not found").WithError(err)
			}

			return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
		}

		if order.CustomerID != claims.UserID {
			return nil, appErrors.ForbiddenError("You do not have access to this order")
		}
	}

	if req.WarrantyID != nil {
		warranty, err := s.warrantyRepo.GetWarrantyByID(ctx, *req.WarrantyID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, appErrors.NotFoundError("Warranty not found").WithError(err)
			}

			return nil, appErrors.DatabaseError("Failed to fetch warranty").WithError(err)
		}

		if warranty.CustomerID != claims.UserID {
			return nil, appErrors.ForbiddenError("You do not have access to this warranty")
		}
	}

	subject, description := s.sanitize(req.Subject), s.sanitize(req.Description)
	if subject == "" || description == "" {
		return nil, appErrors.ValidationError("Subject and description must contain text")
	}

	if utf8.RuneCountInString(subject) > maxSubjectRunes {
		return nil, appErrors.AddValidationError("subject", fmt.Sprintf("must be at most %d characters", maxSubjectRunes))
	}

	complaint := &models.Complaint{
		ID:           uuid.New(),
		TicketNumber: NewTicketNumber(s.now()),
		CustomerID:   claims.UserID,
		OrderID:      req.OrderID,
		WarrantyID:   req.WarrantyID,
		Category:     req.Category,
		Subject:      subject,
		Description:  description,
		Status:       models.ComplaintStatusOpen,
	}

	if err := s.repo.CreateComplaint(ctx, complaint); err != nil {
		return nil, appErrors.DatabaseError("Failed to file complaint").WithError(err)
	}

	metrics.ComplaintFiled(string(complaint.Category))

	name, email := s.customerContact(ctx, claims.UserID)
	if email == "" {
		email = claims.Email
	}

	notify(ctx, s.notifier, models.TemplateComplaintAcknowledgement, email, templates.ComplaintNotice{
		CustomerName: name,
		Complaint:    complaint,
		SupportEmail: s.email.SupportEmail,
	}, s.email.AdminCopy)

	return complaint, nil
}

// customerContact returns the customer's name and email, or blanks when the
// lookup fails.
func (s *complaintService) customerContact(ctx context.Context, customerID uuid.UUID) (string, string) {
	user, err := s.userRepo.GetUserByID(ctx, customerID)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to load complaint owner",
			slog.String("customerId", customerID.String()), slog.String("error", err.Error()))

		return "", ""
	}

	return user.Name, user.Email
}

func (s *complaintService) getComplaint(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	complaint, err := s.repo.GetComplaintByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Complaint not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch complaint").WithError(err)
	}

	return complaint, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Complaint, error) {
	complaint, err := s.getComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(claims, complaint.CustomerID) {
		return nil, appErrors.ForbiddenError("You do not have access to this complaint")
	}

	return complaint, nil
}

func (s *complaintService) ListMyComplaints(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Complaint, int, error) {
	page, size = utils.NormalizePage(page, size)

	complaints, total, err := s.repo.ListComplaintsByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list complaints").WithError(err)
	}

	return complaints, total, nil
}

func (s *complaintService) ListComplaints(ctx context.Context, status models.ComplaintStatus, page, size int) ([]*models.Complaint, int, error) {
	page, size = utils.NormalizePage(page, size)

	complaints, total, err := s.repo.ListComplaints(ctx, status, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list complaints").WithError(err)
	}

	return complaints, total, nil
}

func (s *complaintService) UpdateComplaintStatus(ctx context.Context, id uuid.UUID, req *models.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	complaint, err := s.getComplaint(ctx, id)
	if err != nil {
		return nil, err
	}

	if !complaint.Status.CanTransitionTo(req.Status) {
		return nil, appErrors.ConflictError(fmt.Sprintf("Cannot move complaint from %s to %s", complaint.Status, req.Status))
	}

	notes := complaint.AdminNotes
	if n := s.sanitize(req.Notes); n != "" {
		notes = n
	}

	var resolvedAt *time.Time

	if req.Status == models.ComplaintStatusResolved {
		now := s.now().UTC()
		resolvedAt = &now
	}

	if err := s.repo.UpdateComplaintStatus(ctx, id, req.Status, notes, resolvedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Complaint not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update complaint").WithError(err)
	}

	complaint.Status = req.Status
	complaint.AdminNotes = notes

	if resolvedAt != nil {
		complaint.ResolvedAt = resolvedAt

		if name, email := s.customerContact(ctx, complaint.CustomerID); email != "" {
			notify(ctx, s.notifier, models.TemplateComplaintResolved, email, templates.ComplaintNotice{
				CustomerName: name,
				Complaint:    complaint,
				SupportEmail: s.email.SupportEmail,
			}, nil)
		}
	}

	return complaint, nil
}
