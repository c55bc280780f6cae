package main

import (
	"context"
	"fmt"
	"log"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/db"
	"devconnector/internal/model"
	"devconnector/internal/repository"
	"devconnector/internal/service"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Posts    []string
}

var seedUsers = []seedUser{
	{
		Name:     "Ada Demo",
		Email:    "ada@example.com",
		Password: "password123",
		Posts: []string{
			"First post from the seed script, long enough to pass validation.",
		},
	},
	{
		Name:     "Grace Demo",
		Email:    "grace@example.com",
		Password: "password123",
		Posts: []string{
			"Another seeded post, also long enough to pass validation.",
			"One more seeded post so the list endpoint has something to sort.",
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Like{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	userService := service.NewUserService(userRepo, jwtService)
	postService := service.NewPostService(postRepo)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, s := range seedUsers {
		user, err := userService.Register(ctx, s.Name, s.Email, s.Password)
		if err != nil {
			log.Printf("Skipping user %s: %v", s.Email, err)
			skipped++
			continue
		}
		created++

		for _, text := range s.Posts {
			if _, err := postService.CreatePost(ctx, text, user.Name, user.Avatar, user.ID); err != nil {
				log.Printf("Failed to create post for %s: %v", s.Email, err)
			}
		}
	}

	fmt.Printf("Seed complete: %d users created, %d skipped\n", created, skipped)
}
