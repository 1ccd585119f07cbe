package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"
	"fundoo-notes-be/pkg/cache"

	"github.com/google/uuid"
)

const labelsCacheTTL = 10 * time.Minute

type ILabelService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.LabelResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) error
	Detach(ctx context.Context, userId uuid.UUID, noteId, labelId uuid.UUID) error
}

type labelService struct {
	uowFactory unitofwork.RepositoryFactory
	cacheStore cache.Store
	log        logger.ILogger
}

func NewLabelService(uowFactory unitofwork.RepositoryFactory, cacheStore cache.Store, log logger.ILogger) ILabelService {
	return &labelService{
		uowFactory: uowFactory,
		cacheStore: cacheStore,
		log:        log,
	}
}

func labelsKey(userId uuid.UUID) string {
	return fmt.Sprintf("labels:user:%s", userId)
}

func (s *labelService) invalidate(ctx context.Context, userId uuid.UUID) {
	// Label names appear inside cached note listings too.
	if err := s.cacheStore.Delete(ctx, labelsKey(userId), notesViewKey(userId)); err != nil {
		s.log.Warn("label", "failed to invalidate label cache", map[string]interface{}{"error": err.Error()})
	}
}

func toLabelResponse(label *entity.Label) *dto.LabelResponse {
	return &dto.LabelResponse{
		Id:        label.Id,
		UserId:    label.UserId,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
		UpdatedAt: label.UpdatedAt,
	}
}

func (s *labelService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.LabelRepository().FindOne(ctx,
		specification.LabelOwnedByUser{UserID: userId},
		specification.ByName{Name: req.Name},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.DuplicateName("Label already exists")
	}

	label := &entity.Label{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uow.LabelRepository().Create(ctx, label); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userId)
	return toLabelResponse(label), nil
}

func (s *labelService) List(ctx context.Context, userId uuid.UUID) ([]*dto.LabelResponse, error) {
	key := labelsKey(userId)

	if raw, found, err := s.cacheStore.Get(ctx, key); err == nil && found {
		var cached []*dto.LabelResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	labels, err := uow.LabelRepository().FindAll(ctx,
		specification.LabelOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LabelResponse, len(labels))
	for i, l := range labels {
		responses[i] = toLabelResponse(l)
	}

	if raw, err := json.Marshal(responses); err == nil {
		if err := s.cacheStore.Set(ctx, key, raw, labelsCacheTTL); err != nil {
			s.log.Warn("label", "failed to cache labels", map[string]interface{}{"error": err.Error()})
		}
	}

	return responses, nil
}

func (s *labelService) fetchOwnedLabel(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Label, error) {
	label, err := uow.LabelRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.LabelOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, apperror.NotFound("Label not found")
	}
	return label, nil
}

func (s *labelService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label, err := s.fetchOwnedLabel(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if label.Name != req.Name {
		existing, err := uow.LabelRepository().FindOne(ctx,
			specification.LabelOwnedByUser{UserID: userId},
			specification.ByName{Name: req.Name},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.DuplicateName("Label already exists")
		}
	}

	label.Name = req.Name
	now := time.Now()
	label.UpdatedAt = &now
	if err := uow.LabelRepository().Update(ctx, label); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userId)
	return toLabelResponse(label), nil
}

// Delete removes the label and every note association pointing at it.
func (s *labelService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	label, err := s.fetchOwnedLabel(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteLabelRepository().DeleteAllByLabelId(ctx, label.Id); err != nil {
		return err
	}
	if err := uow.LabelRepository().Delete(ctx, label.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, userId)
	return nil
}

func (s *labelService) Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachLabelRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return err
	}

	label, err := s.fetchOwnedLabel(ctx, uow, userId, req.LabelId)
	if err != nil {
		return err
	}

	existing, err := uow.NoteLabelRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.ByLabelID{LabelID: label.Id},
	)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.AlreadyLabeled()
	}

	noteLabel := &entity.NoteLabel{
		Id:        uuid.New(),
		NoteId:    note.Id,
		LabelId:   label.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.NoteLabelRepository().Create(ctx, noteLabel); err != nil {
		return err
	}

	s.invalidate(ctx, userId)
	return nil
}

func (s *labelService) Detach(ctx context.Context, userId uuid.UUID, noteId, labelId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, noteId)
	if err != nil {
		return err
	}

	noteLabel, err := uow.NoteLabelRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.ByLabelID{LabelID: labelId},
	)
	if err != nil {
		return err
	}
	if noteLabel == nil {
		return apperror.NotFound("Label is not attached to this note")
	}

	if err := uow.NoteLabelRepository().Delete(ctx, noteLabel.Id); err != nil {
		return err
	}

	s.invalidate(ctx, userId)
	return nil
}
