package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/RecipeLab/pkg/model"
)

const logResource = "log"

type LogRepository interface {
	InsertLog(ctx context.Context, log model.Log) (*model.Log, error)
	FindAllLogs(ctx context.Context) ([]*model.Log, error)
	FindLogByID(ctx context.Context, id uuid.UUID) (*model.Log, error)
	UpdateLog(ctx context.Context, id uuid.UUID, log model.Log) (*model.Log, error)
	DeleteLog(ctx context.Context, id uuid.UUID) (*model.Log, error)
}

func (r *Repository) InsertLog(ctx context.Context, log model.Log) (*model.Log, error) {
	log.ID = uuid.New()
	log.Recipe = nil

	if result := r.DB.WithContext(ctx).Create(&log); result.Error != nil {
		r.Logger.Error("error inserting log", zap.Stringer("recipe_id", log.RecipeID), zap.Error(result.Error))

		return nil, result.Error
	}

	return &log, nil
}

func (r *Repository) FindAllLogs(ctx context.Context) ([]*model.Log, error) {
	var logs []*model.Log

	if result := r.DB.WithContext(ctx).Find(&logs); result.Error != nil {
		return nil, result.Error
	}

	if logs == nil {
		logs = []*model.Log{}
	}

	return logs, nil
}

func (r *Repository) FindLogByID(ctx context.Context, id uuid.UUID) (*model.Log, error) {
	var log model.Log

	result := r.DB.WithContext(ctx).First(&log, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, notFound(logResource, id)
		}

		return nil, result.Error
	}

	return &log, nil
}

func (r *Repository) UpdateLog(ctx context.Context, id uuid.UUID, log model.Log) (*model.Log, error) {
	log.ID = id
	log.Recipe = nil

	result := r.DB.WithContext(ctx).Model(&log).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Select("recipe_id", "date_of_event", "notes", "rating").
		Updates(&log)
	if result.Error != nil {
		r.Logger.Error("error updating log", zap.Stringer("id", id), zap.Error(result.Error))

		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, notFound(logResource, id)
	}

	return &log, nil
}

func (r *Repository) DeleteLog(ctx context.Context, id uuid.UUID) (*model.Log, error) {
	var log model.Log

	result := r.DB.WithContext(ctx).Clauses(clause.Returning{}).Where("id = ?", id).Delete(&log)
	if result.Error != nil {
		r.Logger.Error("error deleting log", zap.Stringer("id", id), zap.Error(result.Error))

		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, notFound(logResource, id)
	}

	return &log, nil
}
