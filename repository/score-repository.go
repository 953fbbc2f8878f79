package repository

import (
	"gorm.io/gorm"
)

type Score struct {
	Id         int    `gorm:"primaryKey"`
	RoundId    int    `gorm:"not null;index"`
	MemberId   int    `gorm:"not null;index"`
	Score      int    `gorm:"not null"`
	FrontScore *int   `gorm:"null"`
	BackScore  *int   `gorm:"null"`
	Round      *Round `gorm:"foreignKey:RoundId"`
	Member     *Member `gorm:"foreignKey:MemberId"`
}

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) GetScoresByMemberId(memberId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Where("member_id = ?", memberId).Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) GetScoresByRoundId(roundId int) ([]*Score, error) {
	scores := make([]*Score, 0)
	result := r.DB.Where("round_id = ?", roundId).Find(&scores)
	if result.Error != nil {
		return nil, result.Error
	}
	return scores, nil
}

func (r *ScoreRepository) GetScoreById(scoreId int) (*Score, error) {
	var score Score
	result := r.DB.First(&score, scoreId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &score, nil
}

func (r *ScoreRepository) SaveScore(score *Score) (*Score, error) {
	result := r.DB.Save(score)
	if result.Error != nil {
		return nil, result.Error
	}
	return score, nil
}

func (r *ScoreRepository) DeleteScoresByRoundId(roundId int) error {
	result := r.DB.Where("round_id = ?", roundId).Delete(&Score{})
	return result.Error
}

func (r *ScoreRepository) DeleteScoresByMemberId(memberId int) error {
	result := r.DB.Where("member_id = ?", memberId).Delete(&Score{})
	return result.Error
}

// AverageScore returns nil when no scores exist.
func (r *ScoreRepository) AverageScore() (*float64, error) {
	var avg *float64
	result := r.DB.Model(&Score{}).Select("avg(score)").Scan(&avg)
	if result.Error != nil {
		return nil, result.Error
	}
	return avg, nil
}

// MinScore returns nil when no scores exist.
func (r *ScoreRepository) MinScore() (*int, error) {
	var min *int
	result := r.DB.Model(&Score{}).Select("min(score)").Scan(&min)
	if result.Error != nil {
		return nil, result.Error
	}
	return min, nil
}
