package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/johnquangdev/meeting-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/task"
	"github.com/johnquangdev/meeting-tracker/pkg/config"
	pkgjwt "github.com/johnquangdev/meeting-tracker/pkg/jwt"
)

const seedSuffix = "@test.local"

func main() {
	log.Println("🚀 Seeding test users...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatalf("Refusing to seed a production database")
	}

	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	jwtManager := pkgjwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)

	meetingRepo := repository.NewMeetingRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	meetings := meeting.NewMeetingService(meetingRepo, nil, nil, nil)
	tasks := task.NewTaskService(taskRepo, meetingRepo, nil, nil, 0, nil)

	log.Println("🗑️  Cleaning up existing seed data...")
	db.Where("user_id LIKE ?", "%"+seedSuffix).Delete(&entities.Task{})
	db.Where("user_id LIKE ?", "%"+seedSuffix).Delete(&entities.Meeting{})

	ctx := context.Background()
	now := time.Now().UTC()

	for i, name := range []string{"alice", "bob", "charlie"} {
		userID := name + seedSuffix

		m, err := meetings.CreateMeeting(ctx, meeting.CreateMeetingInput{
			UserID:       userID,
			Title:        "Weekly sync",
			Date:         now.Add(time.Duration(i+1) * 24 * time.Hour),
			Participants: []string{"alice@test.local", "bob@test.local"},
		})
		if err != nil {
			log.Printf("❌ Failed to create meeting for %s: %v", userID, err)
			continue
		}

		past := now.Add(-48 * time.Hour)
		if _, err := tasks.CreateTask(ctx, task.CreateTaskInput{
			UserID:    userID,
			MeetingID: &m.ID,
			Title:     "Send the notes from last week",
			DueDate:   &past,
		}); err != nil {
			log.Printf("❌ Failed to create task for %s: %v", userID, err)
			continue
		}

		token, err := jwtManager.GenerateAccessToken(userID, userID)
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", userID, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, userID)
		fmt.Printf("Meeting ID:   %s\n", m.ID)
		fmt.Printf("\n📋 Access Token (expires in %v):\n%s\n\n", cfg.JWT.AccessExpiry, token)
	}

	log.Println("✅ Seed data created")
	log.Println("💡 Set header: Authorization: Bearer <access_token>")
}
