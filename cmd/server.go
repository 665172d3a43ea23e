package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"gotodo/internal/config"
	"gotodo/internal/core"
	"gotodo/internal/db"
	"gotodo/internal/http/handler"
	"gotodo/internal/http/handler/middleware"
	"gotodo/internal/http/payload"
	"gotodo/internal/http/server"
	"gotodo/internal/http/view"
	"gotodo/internal/repository"
	"gotodo/pkg/log"
	"gotodo/pkg/session"
)

func Start() error {
	logger := log.NewZapLogger("gotodo", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewTodoRepository(dbConn)

	err = repo.MigrateTables(
		&repository.User{},
		&repository.Todo{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// session service, signed cookie carrying the username
	sessionService := session.NewCookieService([]byte(config.SessionSecret))

	views, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// todoer
	todoer := core.NewTodoer(logger, repo)

	// handler
	todoHlr := handler.NewTodoHandler(
		logger,
		payload.Decoder{},
		todoer,
		sessionService,
		views)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Home, todoHlr.HandleHome)
	mux.HandleFunc(handler.AddTask, todoHlr.HandleAddTask)
	mux.HandleFunc(handler.Login, todoHlr.HandleLogin)
	mux.HandleFunc(handler.Register, todoHlr.HandleRegister)
	mux.HandleFunc(handler.Dashboard, todoHlr.HandleDashboard)
	mux.HandleFunc(handler.Logout, todoHlr.HandleLogout)
	mux.HandleFunc(handler.DeleteTask, todoHlr.HandleDeleteTask)
	mux.HandleFunc(handler.EditTask, todoHlr.HandleEditTask)
	mux.HandleFunc(handler.UpdateTask, todoHlr.HandleUpdateTask)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
