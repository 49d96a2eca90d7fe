package repo

import (
	"github.com/GlebRadaev/bankcards/internal/pg"
	cardrepo "github.com/GlebRadaev/bankcards/internal/repo/card-repo"
	transferrepo "github.com/GlebRadaev/bankcards/internal/repo/transfer-repo"
	userrepo "github.com/GlebRadaev/bankcards/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	CardRepo     *cardrepo.Repository
	TransferRepo *transferrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	cardRepo := cardrepo.New(conn, txManager)
	transferRepo := transferrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		CardRepo:     cardRepo,
		TransferRepo: transferRepo,
	}
}
