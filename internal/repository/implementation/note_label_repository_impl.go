package implementation

import (
	"context"
	"errors"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/mapper"
	"fundoo-notes-be/internal/model"
	"fundoo-notes-be/internal/repository/contract"
	"fundoo-notes-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLabelRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LabelMapper
}

func NewNoteLabelRepository(db *gorm.DB) contract.NoteLabelRepository {
	return &NoteLabelRepositoryImpl{
		db:     db,
		mapper: mapper.NewLabelMapper(),
	}
}

func (r *NoteLabelRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteLabelRepositoryImpl) Create(ctx context.Context, noteLabel *entity.NoteLabel) error {
	m := r.mapper.NoteLabelToModel(noteLabel)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*noteLabel = *r.mapper.NoteLabelToEntity(m)
	return nil
}

func (r *NoteLabelRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.NoteLabel{}, id).Error
}

func (r *NoteLabelRepositoryImpl) DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteLabel{}).Error
}

func (r *NoteLabelRepositoryImpl) DeleteAllByLabelId(ctx context.Context, labelId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("label_id = ?", labelId).Delete(&model.NoteLabel{}).Error
}

func (r *NoteLabelRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteLabel, error) {
	var m model.NoteLabel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NoteLabelToEntity(&m), nil
}

func (r *NoteLabelRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLabel, error) {
	var models []*model.NoteLabel
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.NoteLabel, len(models))
	for i, m := range models {
		entities[i] = r.mapper.NoteLabelToEntity(m)
	}
	return entities, nil
}
