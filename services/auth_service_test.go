package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	user, err := auth.Register("frontdesk", "s3cret-pass", "")
	require.NoError(t, err)
	assert.Equal(t, "STAFF", user.Roles)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	var conflict *utils.ConflictError
	_, err = auth.Register("frontdesk", "another-pass", "")
	require.ErrorAs(t, err, &conflict)

	pair, err := auth.Login("frontdesk", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := utils.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", claims.Username)

	_, err = auth.Login("frontdesk", "wrong-pass")
	require.Error(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.Register("frontdesk", "s3cret-pass", "MANAGER")
	require.NoError(t, err)
	pair, err := auth.Login("frontdesk", "s3cret-pass")
	require.NoError(t, err)

	next, err := auth.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)
	assert.Equal(t, "MANAGER", next.Roles)

	// The old token was replaced and no longer works.
	var notFound *utils.NotFoundError
	_, err = auth.Refresh(pair.RefreshToken)
	require.ErrorAs(t, err, &notFound)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	_, err := auth.Register("frontdesk", "s3cret-pass", "")
	require.NoError(t, err)
	pair, err := auth.Login("frontdesk", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("refresh_token = ?", pair.RefreshToken).
		Update("expiration_date", time.Now().Add(-time.Minute)).Error)

	var validation *utils.ValidationError
	_, err = auth.Refresh(pair.RefreshToken)
	require.ErrorAs(t, err, &validation)
}
