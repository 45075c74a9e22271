// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	passwordCost   int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if err := checkAccess(ctx, userID); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

// UpdateUser replaces the name and email of the account.
func (s *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := checkAccess(ctx, userID); err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID: userID,
		Name:   strings.TrimSpace(req.Name),
		Email:  normalizeEmail(req.Email),
	}
	if user.Name == "" || user.Email == "" {
		return models.User{}, ErrInvalidInput
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update failed")
		return models.User{}, mapStoreError(err)
	}
	return updated, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *userService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := checkAccess(ctx, userID); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return mapStoreError(err)
	}

	err = utils.CheckPassword(user.PasswordHash, req.CurrentPassword)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Warn().Int64("id", userID).Msg("current password mismatch")
		return ErrWrongPassword
	}
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword, s.passwordCost)
	if err != nil {
		return err
	}

	if err = s.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		log.Err(err).Int64("id", userID).Msg("password update failed")
		return mapStoreError(err)
	}
	return nil
}

// ListTaxpayers is restricted to admins.
func (s *userService) ListTaxpayers(ctx context.Context) ([]models.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.userRepository.ListUsersByRole(ctx, models.RoleTaxpayer)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return users, nil
}
