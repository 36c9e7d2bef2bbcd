// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/internal/utils"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It registers doctors with bcrypt password hashes, issues access/refresh JWT
// pairs and consults the blacklist for every parsed token.
type authService struct {
	// doctorRepository is the data-access layer used to create and look up doctors.
	doctorRepository store.DoctorRepository

	// blacklist holds identifiers of tokens revoked by logout.
	blacklist Blacklist

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	// bcryptCost is the work factor of password hashes.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// DoctorRepository and Blacklist and populated with security parameters from
// cfg.
func NewAuthService(doctorRepository store.DoctorRepository, blacklist Blacklist, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		doctorRepository:     doctorRepository,
		blacklist:            blacklist,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		bcryptCost:           cfg.BcryptCost,
		logger:               logger,
	}
}

// RegisterDoctor hashes the password and stores a new doctor account.
//
// Returns the persisted doctor or:
//   - ErrResourceAlreadyExists if the username is taken.
//   - *validators.ValidationError if the password cannot be hashed because of
//     its length.
func (a *authService) RegisterDoctor(ctx context.Context, registration models.DoctorRegistration) (models.Doctor, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hashPassword(registration.Password)
	if err != nil {
		log.Err(err).Str("username", registration.Username).Msg("password hashing failed")
		return models.Doctor{}, err
	}

	doctor, err := a.doctorRepository.CreateDoctor(ctx, models.Doctor{
		Username:     registration.Username,
		PasswordHash: passwordHash,
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		Email:        registration.Email,
		Specialty:    registration.Specialty,
	})
	if err != nil {
		log.Err(err).Str("username", registration.Username).Msg("doctor creation ended with error")
		return models.Doctor{}, fmt.Errorf("doctor creation ended with error: %w", mapStoreError(err))
	}

	return doctor, nil
}

// Login checks the credentials and issues a new access/refresh token pair.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	doctor, err := a.doctorRepository.GetDoctorByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("username", credentials.Username).Msg("login with unknown username")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("doctor search by username failed")
		return models.TokenPair{}, fmt.Errorf("doctor search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("doctor_id", doctor.ID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	access, err := a.createToken(doctor.ID, models.AccessToken, a.accessTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := a.createToken(doctor.ID, models.RefreshToken, a.refreshTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
	}, nil
}

// ParseToken validates the signature, issuer and expiry of tokenString, then
// checks its type and the blacklist. Every rejection is ErrNotAuthorized; only
// a failing blacklist lookup is returned as is.
func (a *authService) ParseToken(ctx context.Context, tokenString string, expected models.TokenType) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNotAuthorized, err)
	}

	if token.Type != expected {
		return models.Token{}, fmt.Errorf("%w: %s token used where %s token is expected", ErrNotAuthorized, token.Type, expected)
	}

	revoked, err := a.blacklist.IsRevoked(ctx, token.ID)
	if err != nil {
		return models.Token{}, err
	}
	if revoked {
		return models.Token{}, fmt.Errorf("%w: token %s is revoked", ErrNotAuthorized, token.ID)
	}

	return token, nil
}

// Logout revokes the presented token until its natural expiry.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	if err := a.blacklist.Revoke(ctx, token.ID, token.ExpiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("jti", token.ID).Msg("token revocation failed")
		return err
	}

	return nil
}

// Refresh issues a new access token for the owner of a valid refresh token.
// The refresh token itself stays usable until it expires or is revoked.
func (a *authService) Refresh(ctx context.Context, refreshToken models.Token) (models.TokenPair, error) {
	if _, err := a.doctorRepository.GetDoctorByID(ctx, refreshToken.DoctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.TokenPair{}, fmt.Errorf("%w: doctor %d no longer exists", ErrNotAuthorized, refreshToken.DoctorID)
		}
		return models.TokenPair{}, err
	}

	access, err := a.createToken(refreshToken.DoctorID, models.AccessToken, a.accessTokenDuration)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access.String()}, nil
}

func (a *authService) createToken(doctorID int64, tokenType models.TokenType, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, doctorID, tokenType, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) hashPassword(password string) (string, error) {
	return hashPassword(password, a.bcryptCost)
}

// hashPassword returns the bcrypt hash of password. bcrypt reads at most 72
// bytes, longer passwords are reported as a validation failure.
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		validationErr := validators.NewValidationError()
		validationErr.Add("password", "Longer than maximum length 72 bytes.")
		return "", validationErr
	}
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hash), nil
}
