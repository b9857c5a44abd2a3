package services

import (
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/utils"
)

// Training field names accepted by UpdateTraining.
const (
	TrainingFieldCourseName = "course_name"
	TrainingFieldLevel      = "level"
	TrainingFieldFile       = "file"
	TrainingFieldFileName   = "file_name"
)

// AddTraining appends a new empty training record and returns the grown list
// together with the created record.
func AddTraining(trainings []models.Training) ([]models.Training, models.Training) {
	created := models.Training{
		ID:         utils.GenerateTrainingID(),
		CourseName: "",
		Level:      "",
		File:       nil,
		FileName:   nil,
	}
	return append(trainings, created), created
}

// UpdateTraining mutates one field of the identified training record. File
// content and filename are stored inline; clearing either sets it to null.
func UpdateTraining(trainings []models.Training, trainingID, field, value string) ([]models.Training, models.Training, error) {
	for i := range trainings {
		if trainings[i].ID != trainingID {
			continue
		}
		switch field {
		case TrainingFieldCourseName:
			trainings[i].CourseName = value
		case TrainingFieldLevel:
			trainings[i].Level = value
		case TrainingFieldFile:
			trainings[i].File = optional(value)
		case TrainingFieldFileName:
			trainings[i].FileName = optional(value)
		default:
			return trainings, models.Training{}, ErrInvalidField
		}
		return trainings, trainings[i], nil
	}
	return trainings, models.Training{}, ErrTrainingNotFound
}

// RemoveTraining deletes the identified training record. Removing an unknown
// id leaves the list unchanged.
func RemoveTraining(trainings []models.Training, trainingID string) []models.Training {
	kept := make([]models.Training, 0, len(trainings))
	for _, tr := range trainings {
		if tr.ID != trainingID {
			kept = append(kept, tr)
		}
	}
	return kept
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
