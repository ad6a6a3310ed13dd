package repository

import (
	"context"

	"github.com/noah-isme/skpi-portal/internal/models"
)

var sampleAchievements = []models.Achievement{
	{ID: "1", Name: "Juara 1 Debat Ekonomi Nasional", Category: "Prestasi", Year: "2023", Status: models.AchievementVerified},
	{ID: "2", Name: "Sertifikasi Analis Keuangan Syariah", Category: "Sertifikasi", Year: "2023", Status: models.AchievementPending},
}

var sampleApplications = []models.Application{
	{ID: "101", StudentName: "Ahmad Fauzi", NIM: "1910203001", Prodi: "Perbankan Syariah", Status: models.ApplicationWaiting},
	{ID: "102", StudentName: "Siti Aminah", NIM: "1910203042", Prodi: "Ekonomi Syariah", Status: models.ApplicationVerified},
	{ID: "103", StudentName: "Budi Santoso", NIM: "1910203055", Prodi: "Akuntansi Syariah", Status: models.ApplicationWaiting},
}

var sampleProdiOptions = []string{"Perbankan Syariah", "Ekonomi Syariah", "Akuntansi Syariah"}

var sampleStats = []models.SummaryStat{
	{Label: "Total Prestasi", Value: 12},
	{Label: "Sertifikasi", Value: 4},
	{Label: "Organisasi", Value: 2},
}

// SampleRepository serves the immutable demo records. Every call returns fresh
// copies so callers can never mutate the shared samples.
type SampleRepository struct{}

// NewSampleRepository constructs a sample repository.
func NewSampleRepository() *SampleRepository {
	return &SampleRepository{}
}

// Achievements lists the student's achievements in insertion order.
func (r *SampleRepository) Achievements(ctx context.Context) ([]models.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Achievement, len(sampleAchievements))
	copy(out, sampleAchievements)
	return out, nil
}

// Applications lists SKPI applications, optionally restricted to the given statuses.
func (r *SampleRepository) Applications(ctx context.Context, statuses ...models.ApplicationStatus) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	allowed := make(map[models.ApplicationStatus]struct{}, len(statuses))
	for _, s := range statuses {
		allowed[s] = struct{}{}
	}
	out := make([]models.Application, 0, len(sampleApplications))
	for _, app := range sampleApplications {
		if len(allowed) > 0 {
			if _, ok := allowed[app.Status]; !ok {
				continue
			}
		}
		out = append(out, app)
	}
	return out, nil
}

// Profile returns the logged-in student's biodata.
func (r *SampleRepository) Profile(ctx context.Context) (*models.StudentProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	options := make([]string, len(sampleProdiOptions))
	copy(options, sampleProdiOptions)
	return &models.StudentProfile{
		FullName:     "Ahmad Fauzi",
		NIM:          "1910203001",
		Prodi:        options[0],
		ProdiOptions: options,
		EntryYear:    2019,
	}, nil
}

// Progress returns the student's current submission stage.
func (r *SampleRepository) Progress(ctx context.Context) (*models.SubmissionProgress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &models.SubmissionProgress{Stage: "Verifikasi Berkas", Badge: "Proses", Percent: 65}, nil
}

// Stats returns the student dashboard counters.
func (r *SampleRepository) Stats(ctx context.Context) ([]models.SummaryStat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.SummaryStat, len(sampleStats))
	copy(out, sampleStats)
	return out, nil
}
