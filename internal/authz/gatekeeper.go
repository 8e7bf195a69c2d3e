package authz

import (
	"go.uber.org/zap"

	"asset-system/internal/entities"
)

// Can - проверка возможности по имени. Неизвестная возможность -> false.
func Can(user *entities.User, capability string) bool {
	rule, ok := capabilityRules[capability]
	if !ok {
		return false
	}
	return rule(user)
}

// Gatekeeper - то же самое, но с логированием отказов.
type Gatekeeper struct {
	logger *zap.Logger
}

func NewGatekeeper(logger *zap.Logger) *Gatekeeper {
	return &Gatekeeper{logger: logger.Named("gatekeeper")}
}

func (g *Gatekeeper) Can(user *entities.User, capability string) bool {
	if Can(user, capability) {
		return true
	}
	fields := []zap.Field{zap.String("capability", capability)}
	if user != nil {
		fields = append(fields,
			zap.Uint64("user_id", user.ID),
			zap.String("position", user.Position.String),
			zap.String("department", user.DepartmentName()),
		)
	}
	g.logger.Debug("доступ запрещён", fields...)
	return false
}
