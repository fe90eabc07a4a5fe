// Package api assembles the HTTP surface: routes, middleware chain and the
// infra endpoints.
package api

import (
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/handlers"
	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const prefix = "/api/v1"

type Handlers struct {
	User         *handlers.UserHandler
	Product      *handlers.ProductHandler
	Cart         *handlers.CartHandler
	Order        *handlers.OrderHandler
	Payment      *handlers.PaymentHandler
	Warranty     *handlers.WarrantyHandler
	Complaint    *handlers.ComplaintHandler
	Notification *handlers.NotificationHandler
	Dashboard    *handlers.DashboardHandler
	Events       *handlers.EventHandler
}

type Options struct {
	Auth      *middleware.AuthMiddleware
	AdminHost string
	// Health serves GET /health. Nil leaves the route unregistered.
	Health  http.Handler
	Swagger bool
	Tracing bool
}

type router struct {
	mux  *http.ServeMux
	auth *middleware.AuthMiddleware
}

func (rt *router) public(pattern string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, metrics.Instrument(pattern, h))
}

func (rt *router) customer(pattern string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, metrics.Instrument(pattern, rt.auth.Authenticate(h)))
}

func (rt *router) admin(pattern string, h http.HandlerFunc) {
	rt.mux.Handle(pattern, metrics.Instrument(pattern, rt.auth.Authenticate(middleware.RequireAdmin(h))))
}

func route(method, path string) string {
	return method + " " + prefix + path
}

// NewRouter wires every route and wraps the mux in the shared middleware
// chain: tracing, request logging, then the admin host guard.
func NewRouter(h Handlers, opts Options) http.Handler {
	rt := &router{mux: http.NewServeMux(), auth: opts.Auth}

	// Public
	rt.public(route(http.MethodPost, "/users/register"), h.User.Register())
	rt.public(route(http.MethodPost, "/users/login"), h.User.Login())
	rt.public(route(http.MethodPost, "/users/password-strength"), h.User.PasswordStrength())
	rt.public(route(http.MethodGet, "/products"), h.Product.ListProducts())
	rt.public(route(http.MethodGet, "/products/{id}"), h.Product.GetProduct())
	rt.public(route(http.MethodGet, "/warranties/lookup/{number}"), h.Warranty.LookupWarranty())
	rt.public(route(http.MethodPost, "/payments/webhook"), h.Payment.HandleStripeWebhook())

	// Customer
	rt.customer(route(http.MethodGet, "/users/profile"), h.User.Profile())
	rt.customer(route(http.MethodGet, "/carts"), h.Cart.GetCart())
	rt.customer(route(http.MethodPost, "/carts/items"), h.Cart.AddItem())
	rt.customer(route(http.MethodPut, "/carts/items"), h.Cart.UpdateQuantity())
	rt.customer(route(http.MethodDelete, "/carts"), h.Cart.ClearCart())
	rt.customer(route(http.MethodPost, "/orders"), h.Order.CreateOrder())
	rt.customer(route(http.MethodGet, "/orders"), h.Order.ListOrders())
	rt.customer(route(http.MethodGet, "/orders/{id}"), h.Order.GetOrder())
	rt.customer(route(http.MethodGet, "/orders/{id}/invoice"), h.Order.Invoice())
	rt.customer(route(http.MethodPost, "/payments"), h.Payment.CreatePayment())
	rt.customer(route(http.MethodGet, "/payments"), h.Payment.ListPayments())
	rt.customer(route(http.MethodGet, "/payments/{id}"), h.Payment.GetPayment())
	rt.customer(route(http.MethodPost, "/warranties"), h.Warranty.RegisterWarranty())
	rt.customer(route(http.MethodGet, "/warranties"), h.Warranty.ListMyWarranties())
	rt.customer(route(http.MethodGet, "/warranties/{id}"), h.Warranty.GetWarranty())
	rt.customer(route(http.MethodPost, "/complaints"), h.Complaint.FileComplaint())
	rt.customer(route(http.MethodGet, "/complaints"), h.Complaint.ListMyComplaints())
	rt.customer(route(http.MethodGet, "/complaints/{id}"), h.Complaint.GetComplaint())

	// Admin
	rt.admin(route(http.MethodPost, "/admin/products"), h.Product.CreateProduct())
	rt.admin(route(http.MethodPut, "/admin/products/{id}"), h.Product.UpdateProduct())
	rt.admin(route(http.MethodPut, "/admin/products/{id}/image"), h.Product.UploadImage())
	rt.admin(route(http.MethodGet, "/admin/orders"), h.Order.ListAllOrders())
	rt.admin(route(http.MethodPatch, "/admin/orders/{id}/status"), h.Order.UpdateOrderStatus())
	rt.admin(route(http.MethodPost, "/admin/orders/{id}/invoice/send"), h.Order.SendInvoice())
	rt.admin(route(http.MethodPost, "/admin/orders/{id}/refund"), h.Payment.RefundOrder())
	rt.admin(route(http.MethodGet, "/admin/orders/stream"), h.Events.OrderStream())
	rt.admin(route(http.MethodGet, "/admin/warranties"), h.Warranty.ListWarranties())
	rt.admin(route(http.MethodPost, "/admin/warranties/{id}/void"), h.Warranty.VoidWarranty())
	rt.admin(route(http.MethodGet, "/admin/complaints"), h.Complaint.ListComplaints())
	rt.admin(route(http.MethodPatch, "/admin/complaints/{id}/status"), h.Complaint.UpdateComplaintStatus())
	rt.admin(route(http.MethodPost, "/admin/notifications/email"), h.Notification.SendEmail())
	rt.admin(route(http.MethodGet, "/admin/notifications"), h.Notification.ListNotifications())
	rt.admin(route(http.MethodGet, "/admin/notifications/{id}"), h.Notification.GetNotification())
	rt.admin(route(http.MethodGet, "/admin/dashboard/summary"), h.Dashboard.Summary())
	rt.admin(route(http.MethodGet, "/admin/dashboard/sales"), h.Dashboard.Sales())
	rt.admin(route(http.MethodGet, "/admin/dashboard/top-products"), h.Dashboard.TopProducts())

	// Infra
	if opts.Health != nil {
		rt.mux.Handle("GET /health", opts.Health)
	}

	rt.mux.Handle("GET /metrics", metrics.Handler())

	if opts.Swagger {
		rt.mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	var handler http.Handler = rt.mux
	handler = middleware.HostGuard(opts.AdminHost)(handler)
	handler = middleware.Logging(handler)

	if opts.Tracing {
		handler = otelhttp.NewHandler(handler, "storefront",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}

	return handler
}
