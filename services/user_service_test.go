package services

import (
	"context"
	"errors"
	"testing"

	"fittrack/models"
	"fittrack/storage/memory"
	"fittrack/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	prefix string
	url    string
	err    error
}

func (f *fakeUploader) UploadDataURI(_ context.Context, _ string, prefix string) (string, error) {
	f.prefix = prefix
	return f.url, f.err
}

func seedUser(t *testing.T, store *memory.Store) *models.User {
	t.Helper()
	u := newUser("eve")
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

func TestProfileIncludesBMI(t *testing.T) {
	store := memory.New()
	u := newUser("fay")
	u.Height, u.Weight = float(170), float(65)
	require.NoError(t, store.CreateUser(context.Background(), u))

	p, err := NewUserService(store, nil).Profile(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, p.BMI)
	assert.Equal(t, "normal", p.BMI.Category)

	_, err = NewUserService(store, nil).Profile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	store := memory.New()
	u := seedUser(t, store)
	svc := NewUserService(store, nil)
	gender := models.Male
	name := "Eve Adams"

	p, err := svc.UpdateProfile(context.Background(), u.ID, ProfileInput{
		Name:             &name,
		Gender:           &gender,
		Height:           float(180),
		Weight:           float(90),
		DailyCalorieGoal: float(2500),
	})
	require.NoError(t, err)

	assert.Equal(t, "Eve Adams", p.Name)
	assert.Equal(t, models.Male, p.Gender)
	assert.Equal(t, 2500.0, p.DailyCalorieGoal)
	assert.Equal(t, u.Email, p.Email)
	require.NotNil(t, p.BMI)
	assert.Equal(t, "overweight", p.BMI.Category)

	stored, err := store.GetUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eve Adams", stored.Name)
}

func TestUpdateProfileValidation(t *testing.T) {
	store := memory.New()
	u := seedUser(t, store)
	blank := "  "
	goal := models.FitnessGoal("bulk")

	_, err := NewUserService(store, nil).UpdateProfile(context.Background(), u.ID, ProfileInput{
		Name:           &blank,
		FitnessGoal:    &goal,
		ProfilePicture: "data:image/png;base64,AAAA",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "fitnessGoal", "profilePicture"}, fields)
}

func TestUpdateProfileUploadsPicture(t *testing.T) {
	store := memory.New()
	u := seedUser(t, store)
	up := &fakeUploader{url: "https://cdn.example.com/profile-pictures/x.png"}

	p, err := NewUserService(store, up).UpdateProfile(context.Background(), u.ID, ProfileInput{ProfilePicture: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Equal(t, up.url, p.ProfilePicture)
	assert.Equal(t, u.ID.String(), up.prefix)
}

func TestUpdateProfileUploadErrors(t *testing.T) {
	store := memory.New()
	u := seedUser(t, store)

	_, err := NewUserService(store, &fakeUploader{err: utils.ErrInvalidImage}).
		UpdateProfile(context.Background(), u.ID, ProfileInput{ProfilePicture: "nope"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "profilePicture", verr.Errors[0].Field)

	boom := errors.New("s3 down")
	_, err = NewUserService(store, &fakeUploader{err: boom}).
		UpdateProfile(context.Background(), u.ID, ProfileInput{ProfilePicture: "data:image/png;base64,AAAA"})
	assert.ErrorIs(t, err, boom)
}
