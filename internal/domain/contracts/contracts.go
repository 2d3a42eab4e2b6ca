package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Requests já resolvidos para o domínio (ids convertidos, usuário extraído do
// contexto da requisição).

type GoalCreateRequest struct {
	UserId   ulid.ULID
	Title    string
	Target   float64
	Deadline time.Time
	Category string
}
