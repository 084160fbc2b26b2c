package order

import (
	"time"

	"fooddelivery-api/internal/domain"
)

var statusLabels = map[domain.OrderStatus]string{
	domain.StatusPending:   "Pendente",
	domain.StatusPreparing: "Em Preparo",
	domain.StatusOnTheWay:  "A Caminho",
	domain.StatusDelivered: "Entregue",
	domain.StatusCancelled: "Cancelado",
}

var statusColors = map[domain.OrderStatus]string{
	domain.StatusPending:   "#f59e0b",
	domain.StatusPreparing: "#3b82f6",
	domain.StatusOnTheWay:  "#8b5cf6",
	domain.StatusDelivered: "#10b981",
	domain.StatusCancelled: "#ef4444",
}

const neutralColor = "#6b655c"

// FormatDate renders an order date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime renders an order time as HH:MM (24h).
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// StatusLabel returns the display label for a status, falling back to
// the raw status string for unrecognized values.
func StatusLabel(s domain.OrderStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusColor returns the display color for a status, falling back to a
// neutral gray for unrecognized values.
func StatusColor(s domain.OrderStatus) string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return neutralColor
}
