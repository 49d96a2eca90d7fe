package service

import (
	"github.com/GlebRadaev/bankcards/internal/handlers/cards"
	"github.com/GlebRadaev/bankcards/internal/handlers/transfers"
	"github.com/GlebRadaev/bankcards/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/bankcards/pkg/auth"

	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/GlebRadaev/bankcards/internal/repo"
	authservice "github.com/GlebRadaev/bankcards/internal/service/authservice"
	cardservice "github.com/GlebRadaev/bankcards/internal/service/cardservice"
	transferservice "github.com/GlebRadaev/bankcards/internal/service/transferservice"
	userservice "github.com/GlebRadaev/bankcards/internal/service/userservice"
)

// AuthService stays concrete: besides the auth endpoints it is the
// ActorResolver every protected handler group resolves the caller through.
type Services struct {
	AuthService     *authservice.Service
	UserService     users.Service
	CardService     cards.Service
	TransferService transfers.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, codec cardservice.Codec, jwtService pkgauth.JWTServiceInterface) *Services {
	hashService := &pkgauth.HashService{}
	authService := authservice.New(repo.UserRepo, hashService, jwtService)
	userService := userservice.New(repo.UserRepo, repo.CardRepo, hashService)
	cardService := cardservice.New(repo.CardRepo, repo.UserRepo, codec)
	transferService := transferservice.New(repo.CardRepo, repo.TransferRepo, txManager)

	return &Services{
		AuthService:     authService,
		UserService:     userService,
		CardService:     cardService,
		TransferService: transferService,
	}
}
