package repositories

import (
	"gorm.io/gorm"
	"speedboat-api/models"
)

// SpeedboatRepository is the persistence adapter for Speedboat rows. Every
// operation is a single synchronous round trip touching one row; not-found
// is reported as gorm.ErrRecordNotFound and validation failures as
// models.ValidationErrors.
type SpeedboatRepository struct {
	db *gorm.DB
}

func NewSpeedboatRepository(db *gorm.DB) *SpeedboatRepository {
	return &SpeedboatRepository{db: db}
}

// Create validates the params and persists a new row. An invalid record is
// never written.
func (r *SpeedboatRepository) Create(params models.SpeedboatParams) (*models.Speedboat, error) {
	if errs := params.Validate(); errs != nil {
		return nil, errs
	}

	boat := params.Record()
	if err := r.db.Create(&boat).Error; err != nil {
		return nil, err
	}
	return &boat, nil
}

func (r *SpeedboatRepository) FindByID(id uint64) (*models.Speedboat, error) {
	var boat models.Speedboat
	if err := r.db.First(&boat, id).Error; err != nil {
		return nil, err
	}
	return &boat, nil
}

// ListAll returns every stored speedboat in id order. An empty store yields
// an empty, non-nil slice so the collection serializes as [].
func (r *SpeedboatRepository) ListAll() ([]models.Speedboat, error) {
	boats := make([]models.Speedboat, 0)
	if err := r.db.Order("id").Find(&boats).Error; err != nil {
		return nil, err
	}
	return boats, nil
}

// Update applies only the provided attributes to an existing row after
// re-validating them. Unknown attributes are dropped, and a failed
// validation leaves the row untouched.
func (r *SpeedboatRepository) Update(id uint64, raw map[string]interface{}) (*models.Speedboat, error) {
	boat, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	fields := models.FilterSpeedboatFields(raw)
	if errs := models.ValidateSpeedboatFields(fields); errs != nil {
		return nil, errs
	}
	if len(fields) == 0 {
		return boat, nil
	}

	if err := r.db.Model(boat).Updates(fields).Error; err != nil {
		return nil, err
	}

	// Reload so callers see exactly what was stored.
	return r.FindByID(id)
}

func (r *SpeedboatRepository) Delete(id uint64) error {
	boat, err := r.FindByID(id)
	if err != nil {
		return err
	}
	return r.db.Delete(boat).Error
}
