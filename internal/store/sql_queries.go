package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clinical-records/models"
)

const revokedTokensTable = "revoked_tokens"

var (
	doctorColumns        = []string{"id", "username", "password_hash", "first_name", "last_name", "email", "specialty", "created_at"}
	patientColumns       = []string{"id", "document", "first_name", "last_name", "birth_date", "gender", "phone", "address", "blood_type", "created_by", "created_at"}
	clinicalStoryColumns = []string{"id", "pacient_id", "doctor_id", "reason", "description", "diagnosis", "treatment", "created_at", "updated_at"}
	allergyColumns       = []string{"id", "pacient_id", "name", "severity", "reaction", "created_at"}
)

type rowScanner interface {
	Scan(dest ...any) error
}

// now returns the timestamp written into created_at/updated_at columns.
// PostgreSQL keeps microseconds, so both dialects store that precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (db *DB) selectByID(table string, columns []string, id int64) sq.SelectBuilder {
	return db.builder.Select(columns...).From(table).Where(sq.Eq{"id": id})
}

func (db *DB) deleteByID(table string, id int64) sq.DeleteBuilder {
	return db.builder.Delete(table).Where(sq.Eq{"id": id})
}

// ── doctors ──────────────────────────────────────────────────────────────────

func (db *DB) insertDoctorQuery(d models.Doctor) sq.InsertBuilder {
	return db.builder.Insert(d.TableName()).
		Columns("username", "password_hash", "first_name", "last_name", "email", "specialty", "created_at").
		Values(d.Username, d.PasswordHash, d.FirstName, d.LastName, d.Email, d.Specialty, d.CreatedAt).
		Suffix("RETURNING id")
}

func doctorChanges(u models.DoctorUpdate, passwordHash string) map[string]any {
	changes := make(map[string]any, 5)
	if passwordHash != "" {
		changes["password_hash"] = passwordHash
	}
	setIfNotNil(changes, "first_name", u.FirstName)
	setIfNotNil(changes, "last_name", u.LastName)
	setIfNotNil(changes, "email", u.Email)
	setIfNotNil(changes, "specialty", u.Specialty)
	return changes
}

func scanDoctor(row rowScanner) (models.Doctor, error) {
	var d models.Doctor
	err := row.Scan(&d.ID, &d.Username, &d.PasswordHash, &d.FirstName, &d.LastName, &d.Email, &d.Specialty, &d.CreatedAt)
	return d, err
}

// ── pacients ─────────────────────────────────────────────────────────────────

func (db *DB) insertPatientQuery(p models.Patient) sq.InsertBuilder {
	return db.builder.Insert(p.TableName()).
		Columns("document", "first_name", "last_name", "birth_date", "gender", "phone", "address", "blood_type", "created_by", "created_at").
		Values(p.Document, p.FirstName, p.LastName, p.BirthDate, p.Gender, p.Phone, p.Address, p.BloodType, nullID(p.CreatedBy), p.CreatedAt).
		Suffix("RETURNING id")
}

func patientChanges(u models.PatientUpdate) map[string]any {
	changes := make(map[string]any, 8)
	setIfNotNil(changes, "document", u.Document)
	setIfNotNil(changes, "first_name", u.FirstName)
	setIfNotNil(changes, "last_name", u.LastName)
	setIfNotNil(changes, "birth_date", u.BirthDate)
	setIfNotNil(changes, "gender", u.Gender)
	setIfNotNil(changes, "phone", u.Phone)
	setIfNotNil(changes, "address", u.Address)
	setIfNotNil(changes, "blood_type", u.BloodType)
	return changes
}

func scanPatient(row rowScanner) (models.Patient, error) {
	var (
		p         models.Patient
		createdBy sql.NullInt64
	)
	err := row.Scan(&p.ID, &p.Document, &p.FirstName, &p.LastName, &p.BirthDate, &p.Gender, &p.Phone, &p.Address, &p.BloodType, &createdBy, &p.CreatedAt)
	p.CreatedBy = createdBy.Int64
	return p, err
}

// ── clinical_stories ─────────────────────────────────────────────────────────

func (db *DB) insertClinicalStoryQuery(c models.ClinicalStory) sq.InsertBuilder {
	return db.builder.Insert(c.TableName()).
		Columns("pacient_id", "doctor_id", "reason", "description", "diagnosis", "treatment", "created_at", "updated_at").
		Values(c.PatientID, nullID(c.DoctorID), c.Reason, c.Description, c.Diagnosis, c.Treatment, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING id")
}

func clinicalStoryChanges(u models.ClinicalStoryUpdate) map[string]any {
	changes := make(map[string]any, 5)
	setIfNotNil(changes, "reason", u.Reason)
	setIfNotNil(changes, "description", u.Description)
	setIfNotNil(changes, "diagnosis", u.Diagnosis)
	setIfNotNil(changes, "treatment", u.Treatment)
	return changes
}

func scanClinicalStory(row rowScanner) (models.ClinicalStory, error) {
	var (
		c        models.ClinicalStory
		doctorID sql.NullInt64
	)
	err := row.Scan(&c.ID, &c.PatientID, &doctorID, &c.Reason, &c.Description, &c.Diagnosis, &c.Treatment, &c.CreatedAt, &c.UpdatedAt)
	c.DoctorID = doctorID.Int64
	return c, err
}

// ── allergies ────────────────────────────────────────────────────────────────

func (db *DB) insertAllergyQuery(a models.Allergy) sq.InsertBuilder {
	return db.builder.Insert(a.TableName()).
		Columns("pacient_id", "name", "severity", "reaction", "created_at").
		Values(a.PatientID, a.Name, a.Severity, a.Reaction, a.CreatedAt).
		Suffix("RETURNING id")
}

func scanAllergy(row rowScanner) (models.Allergy, error) {
	var a models.Allergy
	err := row.Scan(&a.ID, &a.PatientID, &a.Name, &a.Severity, &a.Reaction, &a.CreatedAt)
	return a, err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func setIfNotNil(changes map[string]any, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}

// nullID stores a zero reference as NULL.
func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
