package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	manualslotHTTP "campus-timetable/internal/manualslot/delivery/http"
	"campus-timetable/internal/middleware"
	timetableHTTP "campus-timetable/internal/timetable/delivery/http"
	"campus-timetable/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw                middleware.Middleware
	timetableHandler  timetableHTTP.Handler
	manualSlotHandler manualslotHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware        middleware.Middleware
	TimetableHandler  timetableHTTP.Handler
	ManualSlotHandler manualslotHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 cfg.Logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		timetableHandler:  cfg.TimetableHandler,
		manualSlotHandler: cfg.ManualSlotHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timetableHandler == nil {
		return errors.New("timetable handler is required")
	}
	if srv.manualSlotHandler == nil {
		return errors.New("manual slot handler is required")
	}
	return nil
}
