package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"droscher.com/RecipeLab/pkg/model"
)

// LogRepository is a mock type for the repository.LogRepository interface.
type LogRepository struct {
	mock.Mock
}

func (_m *LogRepository) log(ret mock.Arguments) (*model.Log, error) {
	var log *model.Log
	if ret.Get(0) != nil {
		log = ret.Get(0).(*model.Log)
	}

	return log, ret.Error(1)
}

func (_m *LogRepository) InsertLog(ctx context.Context, log model.Log) (*model.Log, error) {
	return _m.log(_m.Called(ctx, log))
}

func (_m *LogRepository) FindAllLogs(ctx context.Context) ([]*model.Log, error) {
	ret := _m.Called(ctx)

	var logs []*model.Log
	if ret.Get(0) != nil {
		logs = ret.Get(0).([]*model.Log)
	}

	return logs, ret.Error(1)
}

func (_m *LogRepository) FindLogByID(ctx context.Context, id uuid.UUID) (*model.Log, error) {
	return _m.log(_m.Called(ctx, id))
}

func (_m *LogRepository) UpdateLog(ctx context.Context, id uuid.UUID, log model.Log) (*model.Log, error) {
	return _m.log(_m.Called(ctx, id, log))
}

func (_m *LogRepository) DeleteLog(ctx context.Context, id uuid.UUID) (*model.Log, error) {
	return _m.log(_m.Called(ctx, id))
}

// NewLogRepository creates a new instance of LogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewLogRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *LogRepository {
	m := &LogRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
