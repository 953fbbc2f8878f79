package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Round struct {
	Id          int       `gorm:"primaryKey"`
	Date        time.Time `gorm:"not null"`
	Course      string    `gorm:"not null"`
	RoundNumber int       `gorm:"not null;default:0"`
	Scores      []*Score  `gorm:"foreignKey:RoundId"`
}

type RoundRepository struct {
	DB *gorm.DB
}

func NewRoundRepository(db *gorm.DB) *RoundRepository {
	return &RoundRepository{DB: db}
}

// GetAllRoundsByDate returns every round ordered by date ascending.
// Equal dates are broken by id, i.e. creation order, so that renumbering
// is reproducible.
func (r *RoundRepository) GetAllRoundsByDate() ([]*Round, error) {
	rounds := make([]*Round, 0)
	result := r.DB.Order("date asc, id asc").Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) GetRoundsWithScores() ([]*Round, error) {
	timer := startQueryTimer("rounds_with_scores")
	defer timer.ObserveDuration()
	rounds := make([]*Round, 0)
	result := r.DB.Preload("Scores.Member").Order("date desc, id desc").Find(&rounds)
	if result.Error != nil {
		return nil, result.Error
	}
	return rounds, nil
}

func (r *RoundRepository) GetRoundById(roundId int, preloads ...string) (*Round, error) {
	var round Round
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&round, roundId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &round, nil
}

func (r *RoundRepository) SaveRound(round *Round) (*Round, error) {
	result := r.DB.Save(round)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save round: %v", result.Error)
	}
	return round, nil
}

func (r *RoundRepository) SetRoundNumber(roundId int, number int) error {
	result := r.DB.Model(&Round{}).Where("id = ?", roundId).Update("round_number", number)
	return result.Error
}

func (r *RoundRepository) DeleteRound(roundId int) error {
	result := r.DB.Delete(&Round{}, roundId)
	return result.Error
}

func (r *RoundRepository) CountRounds() (int64, error) {
	var count int64
	result := r.DB.Model(&Round{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
