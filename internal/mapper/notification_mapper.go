package mapper

import (
	"encoding/json"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(n.Metadata) > 0 {
		// ignore malformed rows rather than failing the whole listing
		_ = json.Unmarshal(n.Metadata, &metadata)
	}

	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}

	var metadata datatypes.JSON
	if n.Metadata != nil {
		if raw, err := json.Marshal(n.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
