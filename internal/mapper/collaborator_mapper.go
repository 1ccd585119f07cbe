package mapper

import (
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/model"
)

type CollaboratorMapper struct{}

func NewCollaboratorMapper() *CollaboratorMapper {
	return &CollaboratorMapper{}
}

func (m *CollaboratorMapper) ToEntity(c *model.Collaborator) *entity.Collaborator {
	if c == nil {
		return nil
	}

	return &entity.Collaborator{
		Id:            c.Id,
		NoteId:        c.NoteId,
		Email:         c.Email,
		InviterUserId: c.InviterUserId,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *CollaboratorMapper) ToModel(c *entity.Collaborator) *model.Collaborator {
	if c == nil {
		return nil
	}

	return &model.Collaborator{
		Id:            c.Id,
		NoteId:        c.NoteId,
		Email:         c.Email,
		InviterUserId: c.InviterUserId,
		CreatedAt:     c.CreatedAt,
	}
}

func (m *CollaboratorMapper) ToEntities(collaborators []*model.Collaborator) []*entity.Collaborator {
	entities := make([]*entity.Collaborator, len(collaborators))
	for i, c := range collaborators {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
