package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fittrack/models"
	"fittrack/storage"
	"fittrack/utils"

	"github.com/google/uuid"
)

// ImageUploader stores a data-URI image and returns its public URL.
type ImageUploader interface {
	UploadDataURI(ctx context.Context, dataURI, prefix string) (string, error)
}

// Profile is the user plus derived body metrics.
type Profile struct {
	*models.User
	BMI *utils.BMI `json:"bmi,omitempty"`
}

// ProfileInput holds the editable profile fields. Nil or empty means
// "unchanged".
type ProfileInput struct {
	Name             *string
	Age              *int
	Weight           *float64
	Height           *float64
	Gender           *models.Gender
	FitnessGoal      *models.FitnessGoal
	DailyCalorieGoal *float64
	ProfilePicture   string
}

type UserService struct {
	users    storage.UserStore
	uploader ImageUploader
}

// NewUserService wires the user store. uploader may be nil when S3 is not
// configured.
func NewUserService(users storage.UserStore, uploader ImageUploader) *UserService {
	return &UserService{users: users, uploader: uploader}
}

func (s *UserService) Profile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	return &Profile{User: user, BMI: utils.BodyMassIndex(user.Height, user.Weight)}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileInput) (*Profile, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}

	v := &ValidationError{}
	if in.Name != nil {
		if name := strings.TrimSpace(*in.Name); name != "" {
			user.Name = name
		} else {
			v.Add("name", "Name cannot be empty")
		}
	}
	if in.Gender != nil {
		if in.Gender.Valid() {
			user.Gender = *in.Gender
		} else {
			v.Add("gender", "Gender must be male, female or other")
		}
	}
	if in.FitnessGoal != nil {
		if in.FitnessGoal.Valid() {
			user.FitnessGoal = *in.FitnessGoal
		} else {
			v.Add("fitnessGoal", "Fitness goal is not recognised")
		}
	}
	if in.Age != nil {
		user.Age = in.Age
	}
	if in.Weight != nil {
		user.Weight = in.Weight
	}
	if in.Height != nil {
		user.Height = in.Height
	}
	if in.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *in.DailyCalorieGoal
	}
	if in.ProfilePicture != "" && s.uploader == nil {
		v.Add("profilePicture", "Image uploads are not configured")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if in.ProfilePicture != "" {
		url, err := s.uploader.UploadDataURI(ctx, in.ProfilePicture, user.ID.String())
		if errors.Is(err, utils.ErrInvalidImage) {
			return nil, invalid("profilePicture", "Profile picture must be a base64 image data URI")
		}
		if err != nil {
			return nil, fmt.Errorf("upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", lookupErr(err))
	}
	return &Profile{User: user, BMI: utils.BodyMassIndex(user.Height, user.Weight)}, nil
}
