package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
	CardStatusExpired CardStatus = "EXPIRED"
)

func (s CardStatus) Valid() bool {
	return s == CardStatusActive || s == CardStatusBlocked || s == CardStatusExpired
}

type TransferStatus string

const (
	TransferStatusPending TransferStatus = "PENDING"
	TransferStatusSuccess TransferStatus = "SUCCESS"
	TransferStatusFailed  TransferStatus = "FAILED"
)

type User struct {
	ID           int    `db:"id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Username() string {
	return u.FirstName + " " + u.LastName
}

// Card keeps the PAN ciphertext in Number; MaskedNumber is filled at the
// service read boundary and never persisted.
type Card struct {
	ID                 int             `db:"id"`
	Number             string          `db:"card_number"`
	MaskedNumber       string          `db:"-"`
	OwnerName          string          `db:"card_owner_name"`
	ValidityPeriod     time.Time       `db:"validity_period"`
	Status             CardStatus      `db:"status"`
	Balance            decimal.Decimal `db:"balance"`
	BlockReason        *string         `db:"block_reason"`
	BlockRequested     bool            `db:"block_requested"`
	BlockRequestReason *string         `db:"block_request_reason"`
	UserID             int             `db:"user_id"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

type Transfer struct {
	ID          int             `db:"id"`
	FromCardID  int             `db:"from_card_id"`
	ToCardID    int             `db:"to_card_id"`
	Amount      decimal.Decimal `db:"amount"`
	Timestamp   time.Time       `db:"timestamp"`
	Description *string         `db:"description"`
	Status      TransferStatus  `db:"status"`
}

// Actor is the resolved current caller. It is threaded explicitly through
// every service call; domain code never reads ambient identity state.
type Actor struct {
	ID   int
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
