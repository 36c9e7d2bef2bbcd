package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clinical-records/internal/config"
	"github.com/MKhiriev/clinical-records/internal/logger"
	"github.com/MKhiriev/clinical-records/internal/store"
	"github.com/MKhiriev/clinical-records/internal/validators"
	"github.com/MKhiriev/clinical-records/models"
)

type doctorService struct {
	doctorRepository store.DoctorRepository
	blacklist        Blacklist

	bcryptCost int

	logger *logger.Logger
}

func NewDoctorService(doctorRepository store.DoctorRepository, blacklist Blacklist, cfg config.App, logger *logger.Logger) DoctorService {
	return &doctorService{
		doctorRepository: doctorRepository,
		blacklist:        blacklist,
		bcryptCost:       cfg.BcryptCost,
		logger:           logger,
	}
}

func (d *doctorService) GetDoctor(ctx context.Context, id int64) (models.Doctor, error) {
	doctor, err := d.doctorRepository.GetDoctorByID(ctx, id)
	if err != nil {
		return models.Doctor{}, fmt.Errorf("getting doctor %d: %w", id, mapStoreError(err))
	}

	return doctor, nil
}

// UpdateDoctor applies a partial update to the caller's own account. A new
// password is stored as a bcrypt hash.
func (d *doctorService) UpdateDoctor(ctx context.Context, callerID, id int64, update models.DoctorUpdate) (models.Doctor, error) {
	log := logger.FromContext(ctx)

	if callerID != id {
		log.Warn().Int64("caller_id", callerID).Int64("doctor_id", id).Msg("attempt to update another doctor")
		return models.Doctor{}, fmt.Errorf("%w: doctor %d cannot update doctor %d", ErrNotAuthorized, callerID, id)
	}
	if update.IsEmpty() {
		return models.Doctor{}, validators.NoInputDataError()
	}

	var passwordHash string
	if update.Password != nil {
		hash, err := hashPassword(*update.Password, d.bcryptCost)
		if err != nil {
			return models.Doctor{}, err
		}
		passwordHash = hash
	}

	doctor, err := d.doctorRepository.UpdateDoctor(ctx, id, update, passwordHash)
	if err != nil {
		log.Err(err).Int64("doctor_id", id).Msg("doctor update ended with error")
		return models.Doctor{}, fmt.Errorf("updating doctor %d: %w", id, mapStoreError(err))
	}

	return doctor, nil
}

// DeleteDoctor removes the caller's own account and revokes the token the
// request was made with.
func (d *doctorService) DeleteDoctor(ctx context.Context, caller models.Token, id int64) error {
	log := logger.FromContext(ctx)

	if caller.DoctorID != id {
		log.Warn().Int64("caller_id", caller.DoctorID).Int64("doctor_id", id).Msg("attempt to delete another doctor")
		return fmt.Errorf("%w: doctor %d cannot delete doctor %d", ErrNotAuthorized, caller.DoctorID, id)
	}

	if err := d.doctorRepository.DeleteDoctor(ctx, id); err != nil {
		log.Err(err).Int64("doctor_id", id).Msg("doctor deletion ended with error")
		return fmt.Errorf("deleting doctor %d: %w", id, mapStoreError(err))
	}

	if err := d.blacklist.Revoke(ctx, caller.ID, caller.ExpiresAt); err != nil {
		log.Err(err).Str("jti", caller.ID).Msg("token revocation after doctor deletion failed")
		return err
	}

	return nil
}
