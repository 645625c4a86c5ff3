package database

import (
	"context"
	"log/slog"
	"time"

	"sweetshop/config"
	"sweetshop/internal/domain/entity"
	"sweetshop/internal/domain/service"
	"sweetshop/internal/errors"
	"sweetshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const (
	defaultAdminUsername = "Admin"
	defaultAdminEmail    = "admin@sweetshop.com"
	defaultAdminPassword = "admin123"
	defaultAdminMobile   = "9999999999"
	defaultAdminAddress  = "Admin Address"
)

type seedSweet struct {
	name        string
	category    string
	price       float64
	quantity    int
	description string
	img         string
}

var defaultSweets = []seedSweet{
	{"Soan Papdi", "Barfi", 50, 10, "Traditional flaky sweet made from gram flour", "assets/Images/soan_papdi.jpg"},
	{"Motichur Laddu", "Laddoo", 30, 15, "Sweet balls made from gram flour and sugar", "assets/Images/motichur_laddu.jpg"},
	{"Mysorepak", "Barfi", 80, 8, "Rich sweet from Mysore made with ghee", "assets/Images/mysore_pak.jpg"},
	{"Gulab Jamun", "Laddoo", 55, 12, "Soft milk-solid balls soaked in sugar syrup", "assets/Images/gulab_jamun.jpg"},
	{"Kaju Barfi", "Barfi", 120, 5, "Premium cashew fudge", "assets/Images/kaju_katli.jpg"},
	{"Rasgulla", "Laddoo", 45, 20, "Spongy cottage cheese balls in sugar syrup", "assets/Images/rasmalai.jpg"},
	{"Suji Halwa", "Halwa", 60, 7, "Semolina pudding with ghee and dry fruits", "assets/Images/suji_ka_halwa.jpg"},
	{"Peda", "Laddoo", 35, 25, "Milk-based sweet flavored with cardamom", "assets/Images/peda.jpg"},
	{"Jalebi", "Farsan", 40, 18, "Crispy spiral sweet soaked in sugar syrup", "assets/Images/jalebi.jpg"},
	{"Ghevar", "Farsan", 65, 6, "Honeycomb-shaped Rajasthani sweet", "assets/Images/Ghevar.jpg"},
}

// Seed writes the default admin when no user has the admin email, and the default
// catalog when the sweets table is empty. Running it again changes nothing.
func Seed(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, cfg *config.SeedConfig, logger *slog.Logger) error {
	adminEmail, adminPassword := defaultAdminEmail, defaultAdminPassword
	if cfg != nil {
		if cfg.AdminEmail != "" {
			adminEmail = cfg.AdminEmail
		}
		if cfg.AdminPassword != "" {
			adminPassword = cfg.AdminPassword
		}
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedAdmin(tx, hasher, adminEmail, adminPassword, logger); err != nil {
			return err
		}

		return seedSweets(tx, logger)
	})
}

func seedAdmin(tx *gorm.DB, hasher service.PasswordHasher, email, password string, logger *slog.Logger) error {
	var count int64
	if err := tx.Model(&model.UserModel{}).
		Where("email = ? OR username = ?", email, defaultAdminUsername).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to look up default admin")
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash default admin password")
	}

	admin := &model.UserModel{
		Username: defaultAdminUsername,
		Email:    email,
		Password: hash,
		Mobile:   defaultAdminMobile,
		Address:  defaultAdminAddress,
		Role:     entity.RoleAdmin.String(),
	}
	if err := tx.Create(admin).Error; err != nil {
		return errors.Wrap(err, "failed to create default admin")
	}

	if logger != nil {
		logger.Info("Default admin created", slog.String("email", email))
	}

	return nil
}

func seedSweets(tx *gorm.DB, logger *slog.Logger) error {
	var count int64
	if err := tx.Model(&model.SweetModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count sweets")
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	sweets := make([]*model.SweetModel, 0, len(defaultSweets))
	for _, s := range defaultSweets {
		description := s.description
		sweets = append(sweets, &model.SweetModel{
			Name:        s.name,
			Category:    s.category,
			Price:       s.price,
			Quantity:    s.quantity,
			Description: &description,
			Img:         s.img,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := tx.Create(&sweets).Error; err != nil {
		return errors.Wrap(err, "failed to seed sweets")
	}

	if logger != nil {
		logger.Info("Default sweets created", slog.Int("count", len(sweets)))
	}

	return nil
}
