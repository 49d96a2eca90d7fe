package handlers

import (
	"net/http"

	authhandlers "github.com/GlebRadaev/bankcards/internal/handlers/auth"
	cardshandlers "github.com/GlebRadaev/bankcards/internal/handlers/cards"
	transfershandlers "github.com/GlebRadaev/bankcards/internal/handlers/transfers"
	usershandlers "github.com/GlebRadaev/bankcards/internal/handlers/users"
	"github.com/GlebRadaev/bankcards/internal/service"
	pkgauth "github.com/GlebRadaev/bankcards/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	RegisterAdmin(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	ListByRole(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	GetMyCards(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	RequestBlock(w http.ResponseWriter, r *http.Request)
	CancelBlockRequest(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	RevealNumber(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Block(w http.ResponseWriter, r *http.Request)
	ApproveBlockRequest(w http.ResponseWriter, r *http.Request)
	RejectBlockRequest(w http.ResponseWriter, r *http.Request)
	ListByStatus(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Transfer(w http.ResponseWriter, r *http.Request)
	MyTransfers(w http.ResponseWriter, r *http.Request)
	CardTransfers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	UserHandler     UserHandler
	CardHandler     CardHandler
	TransferHandler TransferHandler

	jwtService pkgauth.JWTServiceInterface
}

func New(s *service.Services, jwtService pkgauth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		UserHandler:     usershandlers.New(s.UserService, s.AuthService),
		CardHandler:     cardshandlers.New(s.CardService, s.AuthService),
		TransferHandler: transfershandlers.New(s.TransferService, s.AuthService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/register/admin", h.AuthHandler.RegisterAdmin)
		r.Post("/login", h.AuthHandler.Login)
		r.Post("/logout", h.AuthHandler.Logout)
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(pkgauth.AuthMiddleware(h.jwtService))

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.UserHandler.GetMe)
			r.Patch("/me/password", h.UserHandler.ChangePassword)
			r.Get("/all", h.UserHandler.ListAll)
			r.Post("/", h.UserHandler.Create)
			r.Get("/search", h.UserHandler.Search)
			r.Get("/by-role/{role}", h.UserHandler.ListByRole)
			r.Get("/{id}", h.UserHandler.GetByID)
			r.Patch("/{id}/role", h.UserHandler.ChangeRole)
			r.Delete("/{id}", h.UserHandler.Delete)
		})
		r.Route("/cards", func(r chi.Router) {
			r.Get("/my", h.CardHandler.GetMyCards)
			r.Get("/{id}", h.CardHandler.GetByID)
			r.Get("/{id}/balance", h.CardHandler.GetBalance)
			r.Patch("/{id}/request-block", h.CardHandler.RequestBlock)
			r.Patch("/{id}/cancel-block-request", h.CardHandler.CancelBlockRequest)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/create", h.CardHandler.Create)
				r.Get("/all", h.CardHandler.ListAll)
				r.Get("/status/{status}", h.CardHandler.ListByStatus)
				r.Get("/{id}/number", h.CardHandler.RevealNumber)
				r.Patch("/{id}/activate", h.CardHandler.Activate)
				r.Patch("/{id}/block", h.CardHandler.Block)
				r.Patch("/{id}/approve-block", h.CardHandler.ApproveBlockRequest)
				r.Patch("/{id}/reject-block", h.CardHandler.RejectBlockRequest)
				r.Delete("/{id}", h.CardHandler.Delete)
			})
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/transfer/my-cards", h.TransferHandler.Transfer)
			r.Get("/my", h.TransferHandler.MyTransfers)
			r.Get("/card/{id}", h.TransferHandler.CardTransfers)
		})
	})

	return r
}
