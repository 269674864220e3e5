package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestGetByClaimID_MissingClaimIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectQuery("FROM claims").
		WithArgs("CLM-MISSING1").
		WillReturnError(sql.ErrNoRows)

	claim, err := repo.GetByClaimID(context.Background(), "CLM-MISSING1")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, ErrClaimNotFound)
}

func TestGetByClaimID_DatabaseFailureIsNotNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClaimRepository(db)

	mock.ExpectQuery("FROM claims").
		WithArgs("CLM-ABC12345").
		WillReturnError(errors.New("connection refused"))

	claim, err := repo.GetByClaimID(context.Background(), "CLM-ABC12345")

	assert.Nil(t, claim)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClaimNotFound)
}
