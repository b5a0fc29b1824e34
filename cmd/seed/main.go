// Command seed bootstraps a deployment: it creates the admin account
// and loads the initial signup whitelist.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"habitboard/internal/config"
	"habitboard/internal/logger"
	"habitboard/internal/model"
	"habitboard/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	configFile := flag.String("config", "etc/config-dev.yaml", "config file")
	adminUser := flag.String("admin-user", "admin", "admin username")
	adminEmail := flag.String("admin-email", "", "admin email")
	adminPass := flag.String("admin-pass", "", "admin password (required)")
	emails := flag.String("emails", "", "comma-separated emails to whitelist")
	flag.Parse()

	logger.Init(config.LogConfig{Level: "info", Console: true})

	cfg := config.Load(*configFile)
	db, err := cfg.OpenGormDB()
	if err != nil {
		log.Fatal("db connect failed: ", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalCompletion{},
		&model.Challenge{},
		&model.WhitelistedEmail{},
	); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	ctx := context.Background()

	if *adminPass != "" {
		if err := seedAdmin(db, *adminUser, *adminEmail, *adminPass); err != nil {
			log.Fatal("seed admin failed: ", err)
		}
	}

	whitelist := service.NewWhitelistService(db)
	for _, email := range strings.Split(*emails, ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if err := whitelist.Upsert(ctx, email, true); err != nil {
			log.Fatal("whitelist seed failed: ", err)
		}
		logger.Info("whitelisted", "email", email)
	}

	logger.Info("seed done")
}

func seedAdmin(db *gorm.DB, username, email, password string) error {
	var n int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		logger.Info("admin already exists", "name", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	logger.Info("admin created", "uid", u.ID, "name", username)
	return nil
}
