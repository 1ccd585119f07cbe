package main

import (
	"log"
	"os"
	"time"

	"fundoo-notes-be/internal/constant"
	"fundoo-notes-be/internal/model"
	"fundoo-notes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a verified demo account with a handful of notes and labels for local
// development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	email := "demo@fundoo.local"

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Printf("%s demo user already exists, nothing to do", yellow("SKIP"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	user := model.User{
		Id:           uuid.New(),
		Firstname:    "Demo",
		Lastname:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Status:       "verified",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: Failed to create demo user:", err)
	}
	log.Printf("%s user %s", green("CREATED"), email)

	labels := []model.Label{
		{Id: uuid.New(), UserId: user.Id, Name: "work"},
		{Id: uuid.New(), UserId: user.Id, Name: "personal"},
	}
	for i := range labels {
		if err := db.Create(&labels[i]).Error; err != nil {
			log.Fatal("Error: Failed to create label:", err)
		}
		log.Printf("%s label %s", green("CREATED"), labels[i].Name)
	}

	teal, _ := constant.ResolveColour("teal")
	reminder := time.Now().Add(48 * time.Hour)

	notes := []model.Note{
		{Id: uuid.New(), UserId: user.Id, Title: "Welcome", Description: "This is your first note. Pin it, colour it, share it.", Pin: true},
		{Id: uuid.New(), UserId: user.Id, Title: "Groceries", Description: "Milk, eggs, coffee", Colour: &teal},
		{Id: uuid.New(), UserId: user.Id, Title: "Standup notes", Description: "Discuss release checklist with the team", Reminder: &reminder},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Fatal("Error: Failed to create note:", err)
		}
		log.Printf("%s note %q", green("CREATED"), notes[i].Title)
	}

	noteLabel := model.NoteLabel{
		Id:      uuid.New(),
		NoteId:  notes[2].Id,
		LabelId: labels[0].Id,
	}
	if err := db.Create(&noteLabel).Error; err != nil {
		log.Fatal("Error: Failed to attach label:", err)
	}
	log.Printf("%s label %q on note %q", green("ATTACHED"), labels[0].Name, notes[2].Title)

	log.Println(green("Seed completed"))
}
