// Two-user shared daily to-do API: tasks scoped by calendar day,
// completion stats with XP and per-user streaks.
package main

import (
	"context"
	"log"
	"time"

	"github.com/duoday/daily/internal/api"
	"github.com/duoday/daily/internal/repository"
	"github.com/duoday/daily/internal/service"
	"github.com/duoday/daily/pkg/cleanup"
	"github.com/duoday/daily/pkg/config"
	jwtservice "github.com/duoday/daily/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetStringDefault("POSTGRES_DB_ADDRESS", "localhost:5432"),
		Username: cfg.GetStringDefault("POSTGRES_USER", "duoday"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetStringDefault("POSTGRES_DB", "duoday"),
	}
	pool := repository.NewPool(&dbCfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	if err := repository.InitSchema(ctx, pool); err != nil {
		log.Fatal("schema bootstrap error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	tasksRepo := repository.NewTasksRepoWithConn(pool)

	userService := service.NewUserService(usersRepo)
	err := userService.SeedUsers(ctx, []service.SeedCredential{
		{
			Name:     cfg.GetStringDefault("SEED_USER1_NAME", "Ali"),
			Password: cfg.GetStringDefault("SEED_USER1_PASSWORD", "ali123"),
		},
		{
			Name:     cfg.GetStringDefault("SEED_USER2_NAME", "Marwa"),
			Password: cfg.GetStringDefault("SEED_USER2_PASSWORD", "marwa123"),
		},
	})
	if err != nil {
		log.Fatal("seeding users error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:    userService,
		TasksService:   service.NewTasksService(tasksRepo, usersRepo),
		StatsService:   service.NewStatsService(tasksRepo, usersRepo),
		StreaksService: service.NewStreaksService(tasksRepo, usersRepo),
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
