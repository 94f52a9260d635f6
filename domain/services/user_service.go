package services

import (
	"context"

	"planora/domain/dto"
	"planora/domain/models"
)

type UserService interface {
	// Register สร้าง user ใหม่ - username ซ้ำคืน errs.ErrConflict
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)

	// Login ตรวจ credentials แล้วออก session token
	// user ไม่มีจริงกับรหัสผิดให้ error เดียวกัน (ไม่บอกว่าพลาดตรงไหน)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)

	// Logout ลบ session record ฝั่ง server
	Logout(ctx context.Context, sessionID string) error

	// Authenticate ตรวจ token + session record แล้วคืน subject
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}
