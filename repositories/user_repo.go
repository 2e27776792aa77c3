// Data-access layer. The repository hides GORM details behind an
// interface so the service layer stays DB-agnostic and mockable.
package repositories

import (
	"errors"
	"fmt"

	"userapi/models"

	"gorm.io/gorm"
)

// UserRepository defines the operations the service layer expects.
// Depending on interfaces (not concrete types) helps testability and
// swapping implementations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	// List pages through users in a single total ordering and returns
	// the page plus the full collection count. sortBy must come from
	// core's allow-list; it is interpolated into the ORDER BY clause.
	List(sortBy string, descending bool, offset, limit int) ([]models.User, int64, error)
}

// userRepo is the private GORM-backed implementation. It holds a
// *gorm.DB that can speak any configured dialect.
type userRepo struct{ db *gorm.DB }

// NewUserRepository injects *gorm.DB and returns the interface, so
// main.go can wire dependencies without exposing concrete types.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *userRepo) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername uses a parameterized query which GORM compiles safely
// for the dialect.
func (r *userRepo) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update saves fields on an existing user (assumes u has a valid ID).
func (r *userRepo) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// Delete removes a user row by primary key; hard delete.
func (r *userRepo) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of the fully ordered collection and the total
// row count. The ordering is total: ties on the sort field are broken
// by id, and descending reverses the whole ordering including the
// tie-break, so page boundaries stay consistent with a single ordering
// of the collection.
func (r *userRepo) List(sortBy string, descending bool, offset, limit int) ([]models.User, int64, error) {
	var (
		items []models.User
		total int64
	)
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	order := fmt.Sprintf("%s %s", sortBy, dir)
	if sortBy != "id" {
		order = fmt.Sprintf("%s %s, id %s", sortBy, dir, dir)
	}

	if err := r.db.
		Limit(limit).
		Offset(offset).
		Order(order).
		Find(&items).
		Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
