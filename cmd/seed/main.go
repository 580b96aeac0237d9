package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"socialmedia/config"
	"socialmedia/db"
	"socialmedia/models"
	"socialmedia/services"
)

const (
	seedUsers        = 10
	seedPostsPerUser = 3
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	database, err := db.Connect(conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to the database:", err)
		os.Exit(1)
	}
	defer db.Close(database)

	if _, err := db.RunMigrations(database, conf.Migrations.Dir); err != nil {
		fmt.Fprintln(os.Stderr, "Migration failed:", err)
		os.Exit(1)
	}

	if err := seed(database); err != nil {
		fmt.Fprintln(os.Stderr, "Seed failed:", err)
		os.Exit(1)
	}
}

// seed fills an empty database with fake users, posts, comments, likes
// and follow edges. A database that already has users is left alone.
func seed(database *gorm.DB) error {
	ctx := context.Background()
	users := services.NewUserService(database)
	posts := services.NewPostService(database)
	comments := services.NewCommentService(database)
	likes := services.NewLikeService(database)
	followers := services.NewFollowerService(database)

	existing, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		fmt.Println("Database already seeded. Skipping...")
		return nil
	}

	fmt.Printf("Generating %d users...\n", seedUsers)
	created := make([]*models.User, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		avatar := gofakeit.ImageURL(200, 200)
		bio := gofakeit.Sentence(8)
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     gofakeit.Email(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Avatar:    &avatar,
			Bio:       &bio,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		created = append(created, user)
		fmt.Printf("Created user: %s (ID: %d)\n", user.Username, user.ID)
	}

	var allPosts []*models.Post
	for _, user := range created {
		for i := 0; i < seedPostsPerUser; i++ {
			post, err := posts.Create(ctx, user.ID, gofakeit.Paragraph(1, 3, 10, " "))
			if err != nil {
				return err
			}
			allPosts = append(allPosts, post)
		}
	}
	fmt.Printf("Created %d posts\n", len(allPosts))

	commented, liked := 0, 0
	for _, post := range allPosts {
		for _, user := range created {
			if user.ID == post.UserID {
				continue
			}
			if gofakeit.Bool() {
				continue
			}
			if gofakeit.Bool() {
				if _, err := comments.Create(ctx, post.ID, user.ID, gofakeit.Sentence(12)); err != nil {
					return err
				}
				commented++
			}
			if gofakeit.Float32() > 0.4 {
				if _, _, err := likes.Toggle(ctx, post.ID, user.ID); err != nil {
					return err
				}
				liked++
			}
		}
	}
	fmt.Printf("Created %d comments and %d likes\n", commented, liked)

	followed := 0
	for _, a := range created {
		for _, b := range created {
			if a.ID == b.ID || gofakeit.Float32() > 0.3 {
				continue
			}
			if _, err := followers.Follow(ctx, a.ID, b.ID); err != nil {
				return err
			}
			followed++
		}
	}
	fmt.Printf("Created %d follow edges\n", followed)

	fmt.Println("Database seed completed successfully")
	return nil
}
