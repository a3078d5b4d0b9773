package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duoday/daily/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	tasksService   service.TasksServiceI
	statsService   service.StatsServiceI
	streaksService service.StreaksServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	TasksService   service.TasksServiceI
	StatsService   service.StatsServiceI
	StreaksService service.StreaksServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		tasksService:   servicesOptions.TasksService,
		statsService:   servicesOptions.StatsService,
		streaksService: servicesOptions.StreaksService,
		jwtService:     servicesOptions.JwtService,
	}
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.UserContextMiddleware)
	s.mx.Post("/auth", s.Login)
	s.mx.Get("/tasks", s.GetTasks)
	s.mx.Post("/tasks", s.CreateTask)
	s.mx.Patch("/tasks", s.SetTaskCompletion)
	s.mx.Delete("/tasks", s.DeleteTask)
	s.mx.Get("/stats", s.GetStats)
	s.mx.Get("/streaks", s.GetStreaks)
}

func (s *Server) Run(addr string) error {
	s.routes()
	return http.ListenAndServe(addr, s.mx)
}
