package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golfclub/metrics"
	"golfclub/repository"
	"golfclub/utils"

	"gorm.io/gorm"
)

type ScoreEntry struct {
	MemberId   *int
	Name       string
	Score      int
	FrontScore *int
	BackScore  *int
}

type ScoreEdit struct {
	Id         int
	Score      int
	FrontScore *int
	BackScore  *int
}

// ValidationError reports score entries that name neither a member id nor a
// member name. Such entries are rejected instead of silently dropped.
type ValidationError struct {
	Indices []int
}

func (e *ValidationError) Error() string {
	indices := utils.Map(e.Indices, func(i int) string { return fmt.Sprint(i) })
	return fmt.Sprintf("score entries without member or name at positions: %s", strings.Join(indices, ", "))
}

type RoundService struct {
	db              *gorm.DB
	roundRepository *repository.RoundRepository
}

func NewRoundService(db *gorm.DB) *RoundService {
	return &RoundService{
		db:              db,
		roundRepository: repository.NewRoundRepository(db),
	}
}

func (s *RoundService) GetRounds() ([]*repository.Round, error) {
	return s.roundRepository.GetRoundsWithScores()
}

// resolvedEntry is the outcome of the staging phase of member resolution:
// either an existing member or one that will be created on commit.
type resolvedEntry struct {
	member *repository.Member
	entry  ScoreEntry
}

// CreateRound persists a round with its scores, renumbers all rounds and
// recalculates the handicap of every member that was scored, all inside a
// single transaction.
func (s *RoundService) CreateRound(date time.Time, course string, entries []ScoreEntry) (*repository.Round, error) {
	invalid := make([]int, 0)
	for i, entry := range entries {
		if entry.MemberId == nil && entry.Name == "" {
			invalid = append(invalid, i)
		}
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Indices: invalid}
	}

	var round *repository.Round
	err := s.db.Transaction(func(tx *gorm.DB) error {
		resolved, err := resolveEntries(tx, entries)
		if err != nil {
			return err
		}

		round = &repository.Round{
			Date:   date,
			Course: course,
			Scores: utils.Map(resolved, func(r *resolvedEntry) *repository.Score {
				return &repository.Score{
					MemberId:   r.member.Id,
					Score:      r.entry.Score,
					FrontScore: r.entry.FrontScore,
					BackScore:  r.entry.BackScore,
				}
			}),
		}
		round, err = repository.NewRoundRepository(tx).SaveRound(round)
		if err != nil {
			return err
		}

		if err := renumberRounds(tx); err != nil {
			return err
		}

		memberIds := utils.Uniques(utils.Map(resolved, func(r *resolvedEntry) int { return r.member.Id }))
		for _, memberId := range memberIds {
			if err := recalculateHandicap(tx, memberId); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RoundMutationCounter.WithLabelValues("create").Inc()
	return round, nil
}

// UpdateRoundInfo updates the round's date/course and overwrites edited
// scores. Unlike its predecessor it renumbers and recalculates handicaps as
// well: a date edit can change the chronological rank and a score edit
// changes the member's history.
func (s *RoundService) UpdateRoundInfo(roundId int, date time.Time, course string, edits []ScoreEdit) (*repository.Round, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		roundRepository := repository.NewRoundRepository(tx)
		scoreRepository := repository.NewScoreRepository(tx)

		round, err := roundRepository.GetRoundById(roundId)
		if err != nil {
			return err
		}
		round.Date = date
		round.Course = course
		if _, err := roundRepository.SaveRound(round); err != nil {
			return err
		}

		for _, edit := range edits {
			score, err := scoreRepository.GetScoreById(edit.Id)
			if err != nil {
				return err
			}
			if score.RoundId != roundId {
				return fmt.Errorf("score %d does not belong to round %d", edit.Id, roundId)
			}
			score.Score = edit.Score
			score.FrontScore = edit.FrontScore
			score.BackScore = edit.BackScore
			if _, err := scoreRepository.SaveScore(score); err != nil {
				return err
			}
		}

		if err := renumberRounds(tx); err != nil {
			return err
		}

		scores, err := scoreRepository.GetScoresByRoundId(roundId)
		if err != nil {
			return err
		}
		memberIds := utils.Uniques(utils.Map(scores, func(s *repository.Score) int { return s.MemberId }))
		for _, memberId := range memberIds {
			if err := recalculateHandicap(tx, memberId); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RoundMutationCounter.WithLabelValues("update").Inc()
	return s.roundRepository.GetRoundById(roundId, "Scores.Member")
}

// DeleteRound deletes the round's scores before the round itself, then
// renumbers and recalculates the handicap of every member that had a score
// in the round.
func (s *RoundService) DeleteRound(roundId int) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		scoreRepository := repository.NewScoreRepository(tx)
		scores, err := scoreRepository.GetScoresByRoundId(roundId)
		if err != nil {
			return err
		}
		memberIds := utils.Uniques(utils.Map(scores, func(s *repository.Score) int { return s.MemberId }))

		if err := scoreRepository.DeleteScoresByRoundId(roundId); err != nil {
			return err
		}
		if err := repository.NewRoundRepository(tx).DeleteRound(roundId); err != nil {
			return err
		}
		if err := renumberRounds(tx); err != nil {
			return err
		}
		for _, memberId := range memberIds {
			if err := recalculateHandicap(tx, memberId); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	metrics.RoundMutationCounter.WithLabelValues("delete").Inc()
	return nil
}

// resolveEntries stages a member for every entry: an explicit id wins, then
// an exact name match, and a member that will be created otherwise. Two
// entries with the same unknown name resolve to the same staged member.
func resolveEntries(tx *gorm.DB, entries []ScoreEntry) ([]*resolvedEntry, error) {
	memberRepository := repository.NewMemberRepository(tx)
	staged := make(map[string]*repository.Member)
	resolved := make([]*resolvedEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.MemberId != nil {
			member, err := memberRepository.GetMemberById(*entry.MemberId)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, &resolvedEntry{member: member, entry: entry})
			continue
		}
		if member, ok := staged[entry.Name]; ok {
			resolved = append(resolved, &resolvedEntry{member: member, entry: entry})
			continue
		}
		member, err := memberRepository.GetMemberByName(entry.Name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			member, err = memberRepository.SaveMember(&repository.Member{
				Name:     entry.Name,
				Role:     repository.MemberRoleMember,
				Handicap: 0,
			})
			if err != nil {
				return nil, err
			}
		}
		staged[entry.Name] = member
		resolved = append(resolved, &resolvedEntry{member: member, entry: entry})
	}
	return resolved, nil
}

// renumberRounds reassigns RoundNumber = 1..N over all rounds ordered by
// date, ties broken by creation order. Only rows whose number actually
// changed are written.
func renumberRounds(tx *gorm.DB) error {
	roundRepository := repository.NewRoundRepository(tx)
	rounds, err := roundRepository.GetAllRoundsByDate()
	if err != nil {
		return err
	}
	for i, round := range rounds {
		if round.RoundNumber == i+1 {
			continue
		}
		if err := roundRepository.SetRoundNumber(round.Id, i+1); err != nil {
			return err
		}
	}
	return nil
}
