package repository

import (
	"testing"

	"configurator-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// The holder starts empty when Postgres is down at boot; every operation
// must degrade to an error, never dereference the nil handle.
func TestOrderRepository_EmptyHolderReturnsError(t *testing.T) {
	var db *sqlx.DB
	repo := NewOrderRepository(&db)

	err := repo.Create(&models.Order{ID: uuid.New(), ServiceType: models.ServiceWebsite})
	assert.ErrorContains(t, err, "database unavailable")

	_, err = repo.GetByID(uuid.New())
	assert.ErrorContains(t, err, "database unavailable")

	_, err = repo.GetAll()
	assert.ErrorContains(t, err, "database unavailable")

	err = repo.UpdateStatus(uuid.New(), models.OrderConfirmed)
	assert.ErrorContains(t, err, "database unavailable")
}

func TestOrderRepository_NilHolderReturnsError(t *testing.T) {
	repo := NewOrderRepository(nil)

	_, err := repo.GetAll()
	assert.ErrorContains(t, err, "database unavailable")
}
