package service

import (
	"fmt"

	"golfclub/repository"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalRounds  int64
	AverageScore string
	BestScore    *int
}

type StatsService struct {
	roundRepository *repository.RoundRepository
	scoreRepository *repository.ScoreRepository
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		roundRepository: repository.NewRoundRepository(db),
		scoreRepository: repository.NewScoreRepository(db),
	}
}

// GetDashboardStats aggregates the public dashboard numbers. AverageScore is
// formatted to one decimal, "0.0" when no scores exist; BestScore is the
// lowest score on record, nil when no scores exist.
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	totalRounds, err := s.roundRepository.CountRounds()
	if err != nil {
		return nil, err
	}
	average, err := s.scoreRepository.AverageScore()
	if err != nil {
		return nil, err
	}
	averageScore := "0.0"
	if average != nil {
		averageScore = fmt.Sprintf("%.1f", *average)
	}
	best, err := s.scoreRepository.MinScore()
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalRounds:  totalRounds,
		AverageScore: averageScore,
		BestScore:    best,
	}, nil
}
