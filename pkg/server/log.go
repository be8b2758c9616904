package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"droscher.com/RecipeLab/pkg/repository"
	"droscher.com/RecipeLab/pkg/server/rest"
)

const logResource = "log"

type LogServer struct {
	logger     *zap.Logger
	repository repository.LogRepository
	validate   *validator.Validate
}

func NewLogServer(repo repository.LogRepository, validate *validator.Validate, logger *zap.Logger) *LogServer {
	return &LogServer{repository: repo, validate: validate, logger: logger}
}

func (s *LogServer) Register(mux *http.ServeMux, basePath string) {
	base := basePath + "/logs"

	mux.HandleFunc("POST "+base, s.CreateLog)
	mux.HandleFunc("GET "+base, s.GetLogs)
	mux.HandleFunc("GET "+base+"/{id}", s.GetLog)
	mux.HandleFunc("PUT "+base+"/{id}", s.UpdateLog)
	mux.HandleFunc("DELETE "+base+"/{id}", s.DeleteLog)
}

func (s *LogServer) decodeRequest(w http.ResponseWriter, r *http.Request) (*rest.LogRequest, error) {
	var request rest.LogRequest

	if err := decodeJSON(w, r, &request); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(&request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (s *LogServer) CreateLog(w http.ResponseWriter, r *http.Request) {
	request, err := s.decodeRequest(w, r)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	log, err := s.repository.InsertLog(r.Context(), rest.LogToModel(request))
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusCreated, rest.LogFromModel(log))
}

func (s *LogServer) GetLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.repository.FindAllLogs(r.Context())
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.LogsFromModel(logs))
}

func (s *LogServer) GetLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, logResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	log, err := s.repository.FindLogByID(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.LogFromModel(log))
}

func (s *LogServer) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, logResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	request, err := s.decodeRequest(w, r)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	log, err := s.repository.UpdateLog(r.Context(), id, rest.LogToModel(request))
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.LogFromModel(log))
}

func (s *LogServer) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, logResource)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	log, err := s.repository.DeleteLog(r.Context(), id)
	if err != nil {
		WriteError(w, s.logger, err)

		return
	}

	writeJSON(w, s.logger, http.StatusOK, rest.LogFromModel(log))
}
