package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/syxhsssss/pet-management-system/config"
	"github.com/syxhsssss/pet-management-system/middleware"
	"github.com/syxhsssss/pet-management-system/models"
	"github.com/syxhsssss/pet-management-system/routes"
)

func main() {
	log.Info("Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Tag{},
		&models.Adoption{},
		&models.AdoptionApplication{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.WithError(err).Fatal("AutoMigrate failed")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, db, cfg)

	// Back up uploaded images daily at 2 AM, keep 4 days of backups
	go startDailyBackupAtFixedTime(cfg.UploadsDir, cfg.UploadsBackupDir, 4*24*time.Hour, 2, 0)

	log.WithField("port", cfg.Port).Info("Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}

// startDailyBackupAtFixedTime backs up images daily at a fixed hour and removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.WithField("at", next.Format("2006-01-02 15:04:05")).Info("Next image backup scheduled")
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.WithError(err).Error("Failed to back up images")
		} else {
			log.WithField("dir", destDir).Info("Images backed up")
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.WithError(err).Error("Failed to read backup directory")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.WithError(err).WithField("dir", folderPath).Error("Failed to remove old backup")
			} else {
				log.WithField("dir", folderPath).Info("Removed old backup")
			}
		}
	}
}
