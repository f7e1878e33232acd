package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jencrm_backend/internal/models"
	"jencrm_backend/internal/repositories"
	"jencrm_backend/pkg/utils"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientValidation = errors.New("client data validation error")
	ErrClientInUse      = errors.New("client cannot be deleted as they are referenced in other records")
)

// CreateClientRequest is the payload for creating a client. Updates use the
// same shape: an update is a full replacement of the mutable fields.
type CreateClientRequest struct {
	FirstName    string          `json:"first_name" binding:"required"`
	LastName     string          `json:"last_name" binding:"required"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	PassportData json.RawMessage `json:"passport_data"`
}

// ClientService owns validation and persistence orchestration for clients.
type ClientService interface {
	CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error)
	GetClientByID(ctx context.Context, clientID int64) (*models.Client, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, clientID int64, req CreateClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository) ClientService {
	return &clientService{clientRepo: repo}
}

func validateClientData(req CreateClientRequest) error {
	if utils.IsEmpty(req.FirstName) {
		return fmt.Errorf("%w: first name cannot be empty", ErrClientValidation)
	}
	if utils.IsEmpty(req.LastName) {
		return fmt.Errorf("%w: last name cannot be empty", ErrClientValidation)
	}
	if req.Email != nil && *req.Email != "" && !utils.IsValidEmail(*req.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrClientValidation)
	}
	if len(req.PassportData) > 0 && !json.Valid(req.PassportData) {
		return fmt.Errorf("%w: passport_data must be valid JSON", ErrClientValidation)
	}
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	if err := validateClientData(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PassportData: req.PassportData,
	}

	if err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID int64, req CreateClientRequest) (*models.Client, error) {
	if err := validateClientData(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:           clientID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PassportData: req.PassportData,
	}

	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	err := s.clientRepo.DeleteClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrClientInUse
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
