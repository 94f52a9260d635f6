package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	sessionStore  repositories.SessionStore
	sessionSecret string
	sessionTTL    time.Duration
}

func NewUserService(userRepo repositories.UserRepository, sessionStore repositories.SessionStore, sessionSecret string, sessionTTLSeconds int) services.UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		sessionStore:  sessionStore,
		sessionSecret: sessionSecret,
		sessionTTL:    time.Duration(sessionTTLSeconds) * time.Second,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, errs.ErrConflict
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			// pre-check แพ้ race กับ register อีกตัว - outcome เดียวกัน
			return nil, errs.ErrConflict
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	// unknown user กับรหัสผิดต้องตอบเหมือนกันทุกกรณี
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - unknown username", "username", req.Username)
		return "", nil, errs.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, errs.ErrUnauthorized
	}

	session := &models.Session{
		ID:        utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessionStore.Put(ctx, session, s.sessionTTL); err != nil {
		logger.ErrorContext(ctx, "Failed to store session", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	token, err := utils.SignSessionToken(session.ID, user.ID, user.Username, s.sessionSecret, s.sessionTTL)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to sign session token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return token, user, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		logger.WarnContext(ctx, "Failed to delete session", "session_id", sessionID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Session destroyed", "session_id", sessionID)
	return nil
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	userCtx, err := utils.ParseSessionToken(token, s.sessionSecret)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	// token ผ่าน signature แล้วยังต้องมี record ฝั่ง server อยู่ด้วย
	// (logout แล้ว = record หาย = token ใช้ไม่ได้)
	session, err := s.sessionStore.Get(ctx, userCtx.SessionID)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}

	if session.UserID != userCtx.ID {
		return nil, errs.ErrUnauthorized
	}

	return session, nil
}
