package repository

import (
	"fmt"

	"gorm.io/gorm"
)

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "ADMIN"
	MemberRoleMember MemberRole = "MEMBER"
)

type Member struct {
	Id       int        `gorm:"primaryKey"`
	Name     string     `gorm:"not null"`
	Role     MemberRole `gorm:"type:golf.member_role;not null;default:'MEMBER'"`
	Handicap float64    `gorm:"not null;default:0"`
	Scores   []*Score   `gorm:"foreignKey:MemberId"`
}

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) GetAllMembers() ([]*Member, error) {
	members := make([]*Member, 0)
	result := r.DB.Order("name asc").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (r *MemberRepository) GetMemberById(memberId int) (*Member, error) {
	var member Member
	result := r.DB.First(&member, memberId)
	if result.Error != nil {
		return nil, fmt.Errorf("member with id %d not found", memberId)
	}
	return &member, nil
}

// GetMemberByName does an exact name match. Names are not unique; the oldest
// member wins so that repeated lookups always resolve to the same record.
func (r *MemberRepository) GetMemberByName(name string) (*Member, error) {
	var member Member
	result := r.DB.Where("name = ?", name).Order("id asc").First(&member)
	if result.Error != nil {
		return nil, result.Error
	}
	return &member, nil
}

func (r *MemberRepository) SaveMember(member *Member) (*Member, error) {
	result := r.DB.Save(member)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to save member: %v", result.Error)
	}
	return member, nil
}

func (r *MemberRepository) DeleteMember(memberId int) error {
	result := r.DB.Delete(&Member{}, memberId)
	return result.Error
}
