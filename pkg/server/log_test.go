package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"droscher.com/RecipeLab/mocks"
	"droscher.com/RecipeLab/pkg/model"
	"droscher.com/RecipeLab/pkg/repository"
	"droscher.com/RecipeLab/pkg/server"
	"droscher.com/RecipeLab/pkg/server/rest"
)

type LogTestSuite struct {
	suite.Suite
	logRepo  *mocks.LogRepository
	mux      *http.ServeMux
	recipeID uuid.UUID
}

func TestLogTestSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.logRepo = mocks.NewLogRepository(suite.T())
	suite.recipeID = uuid.New()

	suite.mux = http.NewServeMux()
	server.NewLogServer(suite.logRepo, server.NewValidator(), zaptest.NewLogger(suite.T())).
		Register(suite.mux, "/api/v1")
}

func (suite *LogTestSuite) serve(method string, path string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	suite.mux.ServeHTTP(recorder, request)

	return recorder
}

func (suite *LogTestSuite) newYearsLog() model.Log {
	return model.Log{
		DateOfEvent: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		Notes:       "it was okay",
		Rating:      2,
		RecipeID:    suite.recipeID,
	}
}

func (suite *LogTestSuite) TestCreateLog_CoercesRating() {
	id := uuid.New()
	expected := suite.newYearsLog()
	created := expected
	created.ID = id

	suite.logRepo.On("InsertLog", mock.Anything, expected).Return(&created, nil)

	response := suite.serve(http.MethodPost, "/api/v1/logs",
		`{"dateOfEvent":"2020-01-01","notes":"it was okay","rating":"2","recipeId":"`+suite.recipeID.String()+`"}`)

	suite.Equal(http.StatusCreated, response.Code)
	suite.JSONEq(`{"id":"`+id.String()+`","dateOfEvent":"2020-01-01","notes":"it was okay","rating":2,"recipeId":"`+suite.recipeID.String()+`"}`,
		response.Body.String())
}

func (suite *LogTestSuite) TestCreateLog_UnknownRecipe() {
	suite.logRepo.On("InsertLog", mock.Anything, suite.newYearsLog()).Return(nil, gorm.ErrForeignKeyViolated)

	response := suite.serve(http.MethodPost, "/api/v1/logs",
		`{"dateOfEvent":"2020-01-01","notes":"it was okay","rating":2,"recipeId":"`+suite.recipeID.String()+`"}`)

	suite.Equal(http.StatusConflict, response.Code)
}

func (suite *LogTestSuite) TestCreateLog_InvalidBodies() {
	recipeID := suite.recipeID.String()
	bodies := map[string]string{
		"non numeric rating": `{"dateOfEvent":"2020-01-01","notes":"","rating":"great","recipeId":"` + recipeID + `"}`,
		"rating too high":    `{"dateOfEvent":"2020-01-01","notes":"","rating":7,"recipeId":"` + recipeID + `"}`,
		"missing rating":     `{"dateOfEvent":"2020-01-01","notes":"","recipeId":"` + recipeID + `"}`,
		"missing notes":      `{"dateOfEvent":"2020-01-01","rating":3,"recipeId":"` + recipeID + `"}`,
		"bad date":           `{"dateOfEvent":"yesterday","notes":"","rating":3,"recipeId":"` + recipeID + `"}`,
		"bad recipe id":      `{"dateOfEvent":"2020-01-01","notes":"","rating":3,"recipeId":"12"}`,
	}

	for name, body := range bodies {
		suite.Run(name, func() {
			response := suite.serve(http.MethodPost, "/api/v1/logs", body)
			suite.Equal(http.StatusBadRequest, response.Code)
			suite.Contains(response.Body.String(), `"status":400`)
		})
	}
}

func (suite *LogTestSuite) TestGetLogs_Empty() {
	suite.logRepo.On("FindAllLogs", mock.Anything).Return([]*model.Log{}, nil)

	response := suite.serve(http.MethodGet, "/api/v1/logs", "")

	suite.Equal(http.StatusOK, response.Code)
	suite.JSONEq(`[]`, response.Body.String())
}

func (suite *LogTestSuite) TestGetLog() {
	log := suite.newYearsLog()
	log.ID = uuid.New()

	suite.logRepo.On("FindLogByID", mock.Anything, log.ID).Return(&log, nil)

	response := suite.serve(http.MethodGet, "/api/v1/logs/"+log.ID.String(), "")

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"dateOfEvent":"2020-01-01"`)
}

func (suite *LogTestSuite) TestGetLog_NotFound() {
	id := uuid.New()

	suite.logRepo.On("FindLogByID", mock.Anything, id).
		Return(nil, &repository.NotFoundError{Resource: "log", ID: id.String()})

	response := suite.serve(http.MethodGet, "/api/v1/logs/"+id.String(), "")

	suite.Equal(http.StatusNotFound, response.Code)
	suite.JSONEq(`{"status":404,"message":"No log with id:`+id.String()+` found."}`, response.Body.String())
}

func (suite *LogTestSuite) TestUpdateLog() {
	id := uuid.New()
	expected := suite.newYearsLog()
	expected.Rating = 5
	expected.Notes = "better the second time"
	updated := expected
	updated.ID = id

	suite.logRepo.On("UpdateLog", mock.Anything, id, expected).Return(&updated, nil)

	date := rest.NewDate(expected.DateOfEvent)
	rating := rest.Rating(5)
	body, err := json.Marshal(rest.LogRequest{
		DateOfEvent: &date,
		Notes:       pointy.String("better the second time"),
		Rating:      &rating,
		RecipeID:    pointy.String(suite.recipeID.String()),
	})
	suite.Require().NoError(err)

	response := suite.serve(http.MethodPut, "/api/v1/logs/"+id.String(), string(body))

	suite.Equal(http.StatusOK, response.Code)
	suite.Contains(response.Body.String(), `"rating":5`)
}

func (suite *LogTestSuite) TestUpdateLog_PartialBody() {
	response := suite.serve(http.MethodPut, "/api/v1/logs/"+uuid.NewString(), `{"rating":4}`)

	suite.Equal(http.StatusBadRequest, response.Code)
}

func (suite *LogTestSuite) TestDeleteLog_Twice() {
	log := suite.newYearsLog()
	log.ID = uuid.New()

	suite.logRepo.On("DeleteLog", mock.Anything, log.ID).Return(&log, nil).Once()
	suite.logRepo.On("DeleteLog", mock.Anything, log.ID).
		Return(nil, &repository.NotFoundError{Resource: "log", ID: log.ID.String()}).Once()

	first := suite.serve(http.MethodDelete, "/api/v1/logs/"+log.ID.String(), "")
	second := suite.serve(http.MethodDelete, "/api/v1/logs/"+log.ID.String(), "")

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal(http.StatusNotFound, second.Code)
}

func (suite *LogTestSuite) TestDeleteLog_InvalidID() {
	response := suite.serve(http.MethodDelete, "/api/v1/logs/abc", "")

	suite.Equal(http.StatusNotFound, response.Code)
}
