package mocks

import (
	"github.com/stretchr/testify/mock"

	"droscher.com/RecipeLab/pkg/model"
)

// RecipeFinder is a mock type for the integrations.Integration interface.
type RecipeFinder struct {
	mock.Mock
}

func (_m *RecipeFinder) FindRecipe(url string) (*model.Recipe, error) {
	ret := _m.Called(url)

	var recipe *model.Recipe
	if ret.Get(0) != nil {
		recipe = ret.Get(0).(*model.Recipe)
	}

	return recipe, ret.Error(1)
}

// NewRecipeFinder creates a new instance of RecipeFinder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRecipeFinder(t interface {
	mock.TestingT
	Cleanup(func())
},
) *RecipeFinder {
	m := &RecipeFinder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
