package service

import (
	"testing"

	"github.com/GlebRadaev/bankcards/internal/pg"
	"github.com/GlebRadaev/bankcards/internal/repo"
	cardservice "github.com/GlebRadaev/bankcards/internal/service/cardservice"
	pkgauth "github.com/GlebRadaev/bankcards/pkg/auth"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	codec := cardservice.NewMockCodec(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	services := New(repos, txManager, codec, jwtService)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.CardService)
	assert.NotNil(t, services.TransferService)
}
