package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/dealgrind/underwriting-service/internal/config"
	"github.com/dealgrind/underwriting-service/internal/models"
	"github.com/dealgrind/underwriting-service/internal/repository"
	"github.com/dealgrind/underwriting-service/internal/underwriting"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// Compute runs the underwriting engine over a deal without persisting it.
func (s *Service) Compute(a *models.Analysis) (*models.Metrics, error) {
	metrics, err := underwriting.ComputeMetrics(a)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("Computed metrics for %s deal: monthly cash flow %.2f", a.Strategy, metrics.MonthlyCashFlow)
	return metrics, nil
}

// CreateAnalysis computes metrics for a deal and stores both for the
// authenticated user.
func (s *Service) CreateAnalysis(ctx context.Context, name string, a *models.Analysis) (*models.SavedAnalysis, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	metrics, err := underwriting.ComputeMetrics(a)
	if err != nil {
		return nil, fmt.Errorf("failed to compute metrics: %w", err)
	}

	sa := &models.SavedAnalysis{
		UserID:   userID,
		Name:     name,
		Analysis: *a,
		Metrics:  metrics,
	}
	if err := s.repo.CreateAnalysis(sa); err != nil {
		return nil, err
	}

	s.log.Infof("Analysis created for user %d: %s (%s)", userID, name, a.Strategy)
	return sa, nil
}

// ListAnalyses returns the authenticated user's stored analyses.
func (s *Service) ListAnalyses(ctx context.Context) ([]*models.SavedAnalysis, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAnalyses(userID)
}

// GetAnalysis returns one of the authenticated user's stored analyses.
func (s *Service) GetAnalysis(ctx context.Context, id int64) (*models.SavedAnalysis, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAnalysisByID(id, userID)
}

// DeleteAnalysis removes one of the authenticated user's stored analyses.
func (s *Service) DeleteAnalysis(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteAnalysis(id, userID); err != nil {
		return err
	}
	s.log.Infof("Analysis %d deleted by user %d", id, userID)
	return nil
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userIDStr, ok := ctx.Value("userID").(string)
	if !ok || userIDStr == "" {
		return 0, fmt.Errorf("user ID not found in context")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %w", err)
	}
	return userID, nil
}
