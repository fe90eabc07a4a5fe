package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/invoice"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/coolbreeze/storefront/pkg/mailer"
	"github.com/go-playground/validator/v10"
)

const qrCodeSize = 256

// Config is read from the function's environment.
type Config struct {
	Mail    config.Mail
	Invoice config.Invoice
	Site    config.Site
}

type OrderConfirmationRequest struct {
	To           string        `json:"to" validate:"required,email"`
	CustomerName string        `json:"customer_name" validate:"required"`
	Order        *models.Order `json:"order" validate:"required"`
}

type WarrantyRequest struct {
	To           string           `json:"to" validate:"required,email"`
	CustomerName string           `json:"customer_name" validate:"required"`
	Warranty     *models.Warranty `json:"warranty" validate:"required"`
}

type ComplaintRequest struct {
	To           string            `json:"to" validate:"required,email"`
	CustomerName string            `json:"customer_name" validate:"required"`
	Complaint    *models.Complaint `json:"complaint" validate:"required"`
}

type InvoiceRequest struct {
	To    string        `json:"to" validate:"omitempty,email"`
	Order *models.Order `json:"order" validate:"required"`
}

type Handler struct {
	sender   mailer.Sender
	cfg      *Config
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(sender mailer.Sender, cfg *Config) *Handler {
	return &Handler{sender: sender, cfg: cfg, validate: validator.New(), now: time.Now}
}

type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string { return e.message }

func badRequest(message string) error {
	return &httpError{status: http.StatusBadRequest, message: message}
}

// Handle routes an API Gateway proxy request to the matching function.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger := slog.Default().With(
		slog.String("path", req.Path),
		slog.String("request_id", req.RequestContext.RequestID),
	)

	route := "/" + strings.Trim(req.Path, "/")

	var handle func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

	switch route {
	case "/order-confirmation":
		handle = h.orderConfirmation
	case "/warranty":
		handle = h.warranty
	case "/complaint":
		handle = h.complaint
	case "/invoice":
		handle = h.invoice
	default:
		return jsonResponse(http.StatusNotFound, map[string]string{"error": "route not found"}), nil
	}

	if req.HTTPMethod != http.MethodPost {
		return jsonResponse(http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"}), nil
	}

	resp, err := handle(ctx, req)
	if err != nil {
		var httpErr *httpError
		if errors.As(err, &httpErr) {
			logger.Warn("Request rejected", slog.String("error", err.Error()))

			return jsonResponse(httpErr.status, map[string]string{"error": httpErr.message}), nil
		}

		logger.Error("Email provider failed", slog.String("error", err.Error()))

		return jsonResponse(http.StatusBadGateway, map[string]string{"error": "failed to send email"}), nil
	}

	logger.Info("Request handled", slog.Int("status", resp.StatusCode))

	return resp, nil
}

// decode reads the request body into dest and validates it. API Gateway
// base64-encodes bodies it treats as binary.
func (h *Handler) decode(req events.APIGatewayProxyRequest, dest any) error {
	body := []byte(req.Body)

	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return badRequest("invalid base64 body")
		}

		body = decoded
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return badRequest("invalid JSON body")
	}

	if err := h.validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return badRequest("invalid field: " + verrs[0].Field())
		}

		return badRequest(err.Error())
	}

	return nil
}

func (h *Handler) send(ctx context.Context, template, to string, data any, bcc []string) error {
	rendered, err := templates.Render(template, data)
	if err != nil {
		return badRequest(err.Error())
	}

	return h.sender.Send(ctx, &models.EmailNotificationRequest{
		To:          to,
		Subject:     rendered.Subject,
		Content:     rendered.Text,
		HTMLContent: rendered.HTML,
		BCC:         bcc,
		Metadata:    map[string]string{"template": template},
	})
}

func (h *Handler) orderConfirmation(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in OrderConfirmationRequest
	if err := h.decode(req, &in); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	err := h.send(ctx, models.TemplateOrderConfirmation, in.To, templates.OrderConfirmation{
		CustomerName: in.CustomerName,
		Order:        in.Order,
		SiteURL:      h.cfg.Site.PublicURL,
		SupportEmail: h.cfg.Invoice.SupportEmail,
	}, h.cfg.Mail.AdminCopy)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return sent(), nil
}

func (h *Handler) warranty(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in WarrantyRequest
	if err := h.decode(req, &in); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	lookupURL := strings.TrimRight(h.cfg.Site.PublicURL, "/") + "/warranty/" + in.Warranty.WarrantyNumber

	qrCode, err := templates.QRCodeDataURI(lookupURL, qrCodeSize)
	if err != nil {
		return events.APIGatewayProxyResponse{}, badRequest(err.Error())
	}

	err = h.send(ctx, models.TemplateWarrantyRegistered, in.To, templates.WarrantyRegistered{
		CustomerName: in.CustomerName,
		Warranty:     in.Warranty,
		LookupURL:    lookupURL,
		QRCode:       qrCode,
	}, nil)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return sent(), nil
}

// complaint sends the resolution notice for resolved tickets and the
// acknowledgement otherwise.
func (h *Handler) complaint(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in ComplaintRequest
	if err := h.decode(req, &in); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	template, bcc := models.TemplateComplaintAcknowledgement, h.cfg.Mail.AdminCopy
	if in.Complaint.Status == models.ComplaintStatusResolved {
		template, bcc = models.TemplateComplaintResolved, nil
	}

	err := h.send(ctx, template, in.To, templates.ComplaintNotice{
		CustomerName: in.CustomerName,
		Complaint:    in.Complaint,
		SupportEmail: h.cfg.Invoice.SupportEmail,
	}, bcc)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return sent(), nil
}

// invoice returns the rendered invoice and, with ?send=true, emails it to
// the order's contact address.
func (h *Handler) invoice(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var in InvoiceRequest
	if err := h.decode(req, &in); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	date := in.Order.CreatedAt
	if date.IsZero() {
		date = h.now()
	}

	inv := invoice.Build(in.Order, &h.cfg.Invoice, date)

	rendered, err := templates.Render(models.TemplateInvoice, inv)
	if err != nil {
		return events.APIGatewayProxyResponse{}, badRequest(err.Error())
	}

	if req.QueryStringParameters["send"] == "true" {
		to := in.To
		if to == "" {
			to = in.Order.ContactEmail
		}

		if to == "" {
			return events.APIGatewayProxyResponse{}, badRequest("no recipient for invoice")
		}

		err := h.sender.Send(ctx, &models.EmailNotificationRequest{
			To:          to,
			Subject:     rendered.Subject,
			Content:     rendered.Text,
			HTMLContent: rendered.HTML,
			Metadata:    map[string]string{"template": models.TemplateInvoice},
		})
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
		Body:       rendered.HTML,
	}, nil
}

func sent() events.APIGatewayProxyResponse {
	return jsonResponse(http.StatusAccepted, map[string]string{"status": "sent"})
}

func jsonResponse(status int, body any) events.APIGatewayProxyResponse {
	payload, _ := json.Marshal(body)

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}
