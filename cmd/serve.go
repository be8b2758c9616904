package cmd

import (
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/RecipeLab/configs"
	"droscher.com/RecipeLab/pkg/auth"
	"droscher.com/RecipeLab/pkg/integrations"
	"droscher.com/RecipeLab/pkg/repository"
	"droscher.com/RecipeLab/pkg/server"
)

const (
	timeout = 5 * time.Second

	recipeServiceName = "recipelab.v1.RecipeService"
	logServiceName    = "recipelab.v1.LogService"
)

type ServeCmd struct {
	ConfigFile string `default:".RecipeLab.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close() //nolint:errcheck

	validate := server.NewValidator()
	finder := integrations.NewFinder(conf.Integrations.Recipe, logger)

	mux := http.NewServeMux()

	server.NewRecipeServer(repo, finder, validate, logger).Register(mux, conf.Server.BasePath)
	server.NewLogServer(repo, validate, logger).Register(mux, conf.Server.BasePath)

	authManager := auth.NewAuthManager(conf, logger)

	// health checks are POSTs and must stay reachable without a token
	root := http.NewServeMux()
	root.Handle(grpchealth.NewHandler(grpchealth.NewStaticChecker(recipeServiceName, logServiceName)))
	root.Handle("/", authManager.Middleware(mux))

	handler := server.LogRequests(logger, root)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(handler)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address), zap.String("basePath", conf.Server.BasePath))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
