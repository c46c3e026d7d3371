package earnings

import (
	"fmt"
	"strings"

	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
)

// StatusGroup agrupación de estados para los listados de órdenes del panel.
type StatusGroup string

const (
	StatusGroupPending   StatusGroup = "pending"
	StatusGroupCompleted StatusGroup = "completed"
	StatusGroupAll       StatusGroup = "all"
)

var pendingStatuses = map[string]struct{}{
	entity.OrderStatusPlaced:         {},
	entity.OrderStatusAccepted:       {},
	entity.OrderStatusPreparing:      {},
	entity.OrderStatusReady:          {},
	entity.OrderStatusOutForDelivery: {},
}

// ParseStatusGroup interpreta el query param; vacío equivale a "all".
func ParseStatusGroup(s string) (StatusGroup, error) {
	switch g := StatusGroup(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return StatusGroupAll, nil
	case StatusGroupPending, StatusGroupCompleted, StatusGroupAll:
		return g, nil
	default:
		return "", fmt.Errorf("%w: estado %q (pending|completed|all)", domain.ErrInvalidInput, s)
	}
}

// Matches informa si el estado de la orden pertenece al grupo.
func (g StatusGroup) Matches(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	switch g {
	case StatusGroupPending:
		_, ok := pendingStatuses[s]
		return ok
	case StatusGroupCompleted:
		return s == entity.OrderStatusDelivered
	case StatusGroupAll:
		return true
	default:
		return false
	}
}
