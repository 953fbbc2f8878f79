package service

import (
	"math"

	"golfclub/repository"

	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *repository.MemberRepository
	scoreRepository  *repository.ScoreRepository
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: repository.NewMemberRepository(db),
		scoreRepository:  repository.NewScoreRepository(db),
	}
}

func (s *MemberService) GetAllMembers() ([]*repository.Member, error) {
	return s.memberRepository.GetAllMembers()
}

func (s *MemberService) GetMemberById(memberId int) (*repository.Member, error) {
	return s.memberRepository.GetMemberById(memberId)
}

// CreateMember is the only place where a handicap is accepted as input.
// Once the member plays a round, recalculation overwrites it with a value
// derived from their actual score history.
func (s *MemberService) CreateMember(name string, role repository.MemberRole, handicap float64) (*repository.Member, error) {
	if role == "" {
		role = repository.MemberRoleMember
	}
	member := &repository.Member{
		Name:     name,
		Role:     role,
		Handicap: handicap,
	}
	return s.memberRepository.SaveMember(member)
}

func (s *MemberService) UpdateMemberName(memberId int, name string) (*repository.Member, error) {
	member, err := s.memberRepository.GetMemberById(memberId)
	if err != nil {
		return nil, err
	}
	member.Name = name
	member, err = s.memberRepository.SaveMember(member)
	if err != nil {
		return nil, err
	}
	if err := recalculateHandicap(s.db, memberId); err != nil {
		return nil, err
	}
	return s.memberRepository.GetMemberById(memberId)
}

// DeleteMember removes the member's scores before the member itself so that
// no score is ever left pointing at a deleted member. Round numbers are not
// touched, deleting a member never changes the round count.
func (s *MemberService) DeleteMember(memberId int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewScoreRepository(tx).DeleteScoresByMemberId(memberId); err != nil {
			return err
		}
		return repository.NewMemberRepository(tx).DeleteMember(memberId)
	})
}

func (s *MemberService) RecalculateHandicap(memberId int) error {
	return recalculateHandicap(s.db, memberId)
}

// recalculateHandicap derives handicap = max(0, mean(scores) - 72) from the
// member's full score history. A member without scores keeps their stored
// handicap untouched.
func recalculateHandicap(db *gorm.DB, memberId int) error {
	scores, err := repository.NewScoreRepository(db).GetScoresByMemberId(memberId)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}
	sum := 0
	for _, score := range scores {
		sum += score.Score
	}
	average := float64(sum) / float64(len(scores))
	handicap := math.Max(0, average-72)
	return db.Model(&repository.Member{}).Where("id = ?", memberId).Update("handicap", handicap).Error
}
