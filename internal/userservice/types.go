package userservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jarvis787/scribe/internal/common"
)

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	// Password is stored and compared verbatim.
	Password  string    `json:"-"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	logger *slog.Logger
}

type UserModel struct {
	db *sql.DB
}
