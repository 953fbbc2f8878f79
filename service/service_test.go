package service

import (
	"fmt"
	"log"
	"strings"
	"testing"
	"time"

	"golfclub/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB

var enumQueries = []string{
	`CREATE TYPE golf.member_role AS ENUM ('ADMIN', 'MEMBER')`,
}

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=golf",
		resource.GetPort("5432/tcp"))

	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "golf.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		db.Exec(`CREATE SCHEMA IF NOT EXISTS golf`)
		for _, query := range enumQueries {
			x := db.Exec(query)
			if x.Error != nil {
				if strings.Contains(x.Error.Error(), "already exists") {
					continue
				}
			}
		}
		return db.AutoMigrate(
			&repository.Member{},
			&repository.Round{},
			&repository.Score{},
		)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM golf.scores")
	db.Exec("DELETE FROM golf.rounds")
	db.Exec("DELETE FROM golf.members")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func createMember(t *testing.T, name string) *repository.Member {
	member, err := NewMemberService(db).CreateMember(name, repository.MemberRoleMember, 0)
	if err != nil {
		t.Fatalf("Error creating member: %v", err)
	}
	return member
}

func roundNumbers(t *testing.T) map[int]int {
	rounds, err := repository.NewRoundRepository(db).GetAllRoundsByDate()
	if err != nil {
		t.Fatalf("Error loading rounds: %v", err)
	}
	numbers := make(map[int]int)
	for _, round := range rounds {
		numbers[round.Id] = round.RoundNumber
	}
	return numbers
}

func TestRenumberingAfterCreateAndDelete(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Choi")
	entry := func(score int) []ScoreEntry {
		return []ScoreEntry{{MemberId: &member.Id, Score: score}}
	}

	middle, err := roundService.CreateRound(date(2024, 1, 10), "Pine Valley", entry(90))
	assert.Nil(t, err)
	first, err := roundService.CreateRound(date(2024, 1, 5), "Pine Valley", entry(85))
	assert.Nil(t, err)
	last, err := roundService.CreateRound(date(2024, 1, 20), "Sunny Hill", entry(95))
	assert.Nil(t, err)

	numbers := roundNumbers(t)
	assert.Equal(t, 1, numbers[first.Id])
	assert.Equal(t, 2, numbers[middle.Id])
	assert.Equal(t, 3, numbers[last.Id])

	err = roundService.DeleteRound(first.Id)
	assert.Nil(t, err)

	numbers = roundNumbers(t)
	assert.Equal(t, 1, numbers[middle.Id])
	assert.Equal(t, 2, numbers[last.Id])
}

func TestRenumberingBreaksDateTiesByCreationOrder(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Park")
	entries := []ScoreEntry{{MemberId: &member.Id, Score: 90}}

	older, err := roundService.CreateRound(date(2024, 3, 1), "Pine Valley", entries)
	assert.Nil(t, err)
	newer, err := roundService.CreateRound(date(2024, 3, 1), "Pine Valley", entries)
	assert.Nil(t, err)

	numbers := roundNumbers(t)
	assert.Equal(t, 1, numbers[older.Id])
	assert.Equal(t, 2, numbers[newer.Id])
}

func TestHandicapRecalculation(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	memberService := NewMemberService(db)
	member := createMember(t, "Lee")

	_, err := roundService.CreateRound(date(2024, 2, 1), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 90}})
	assert.Nil(t, err)
	updated, err := memberService.GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 18.0, updated.Handicap)

	second, err := roundService.CreateRound(date(2024, 2, 8), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 80}})
	assert.Nil(t, err)
	updated, err = memberService.GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 13.0, updated.Handicap)

	// removal shrinks the history back to the single 90
	err = roundService.DeleteRound(second.Id)
	assert.Nil(t, err)
	updated, err = memberService.GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 18.0, updated.Handicap)
}

func TestHandicapNeverNegative(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Ace")

	_, err := roundService.CreateRound(date(2024, 2, 1), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 68}})
	assert.Nil(t, err)
	updated, err := NewMemberService(db).GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 0.0, updated.Handicap)
}

func TestHandicapUntouchedWithoutScores(t *testing.T) {
	defer TearDown()
	memberService := NewMemberService(db)
	member, err := memberService.CreateMember("Newcomer", repository.MemberRoleMember, 7.5)
	assert.Nil(t, err)

	err = memberService.RecalculateHandicap(member.Id)
	assert.Nil(t, err)
	updated, err := memberService.GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 7.5, updated.Handicap)
}

func TestCascadeDeletion(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	memberService := NewMemberService(db)
	scoreRepository := repository.NewScoreRepository(db)
	memberA := createMember(t, "A")
	memberB := createMember(t, "B")

	round1, err := roundService.CreateRound(date(2024, 4, 1), "Pine Valley", []ScoreEntry{
		{MemberId: &memberA.Id, Score: 90},
		{MemberId: &memberB.Id, Score: 85},
	})
	assert.Nil(t, err)
	round2, err := roundService.CreateRound(date(2024, 4, 8), "Sunny Hill", []ScoreEntry{
		{MemberId: &memberA.Id, Score: 88},
	})
	assert.Nil(t, err)

	err = roundService.DeleteRound(round1.Id)
	assert.Nil(t, err)
	scores, err := scoreRepository.GetScoresByRoundId(round1.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 0)
	scores, err = scoreRepository.GetScoresByRoundId(round2.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 1)

	err = memberService.DeleteMember(memberA.Id)
	assert.Nil(t, err)
	scores, err = scoreRepository.GetScoresByMemberId(memberA.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 0)
	scores, err = scoreRepository.GetScoresByMemberId(memberB.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 0) // memberB only scored in the deleted round
}

func TestMemberResolutionIdempotence(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	memberRepository := repository.NewMemberRepository(db)

	_, err := roundService.CreateRound(date(2024, 5, 1), "Pine Valley", []ScoreEntry{{Name: "Guest Kim", Score: 92}})
	assert.Nil(t, err)
	_, err = roundService.CreateRound(date(2024, 5, 8), "Pine Valley", []ScoreEntry{{Name: "Guest Kim", Score: 88}})
	assert.Nil(t, err)

	members, err := memberRepository.GetAllMembers()
	assert.Nil(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, "Guest Kim", members[0].Name)
	assert.Equal(t, repository.MemberRoleMember, members[0].Role)

	scores, err := repository.NewScoreRepository(db).GetScoresByMemberId(members[0].Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 2)
}

func TestDuplicateNewNamesInOneRoundResolveToOneMember(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)

	round, err := roundService.CreateRound(date(2024, 5, 1), "Pine Valley", []ScoreEntry{
		{Name: "Guest Oh", Score: 92},
		{Name: "Guest Oh", Score: 95},
	})
	assert.Nil(t, err)

	members, err := repository.NewMemberRepository(db).GetAllMembers()
	assert.Nil(t, err)
	assert.Len(t, members, 1)

	scores, err := repository.NewScoreRepository(db).GetScoresByRoundId(round.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 2)
}

func TestCreateRoundRejectsUnresolvableEntries(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Han")

	_, err := roundService.CreateRound(date(2024, 6, 1), "Pine Valley", []ScoreEntry{
		{MemberId: &member.Id, Score: 90},
		{Score: 85},
		{Score: 99},
	})
	assert.NotNil(t, err)
	validationError, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, validationError.Indices)

	// nothing was persisted
	count, err := repository.NewRoundRepository(db).CountRounds()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUpdateRoundInfoRenumbersAndRecalculates(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Seo")

	first, err := roundService.CreateRound(date(2024, 7, 1), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 90}})
	assert.Nil(t, err)
	second, err := roundService.CreateRound(date(2024, 7, 8), "Sunny Hill", []ScoreEntry{{MemberId: &member.Id, Score: 80}})
	assert.Nil(t, err)

	// move the second round before the first and change its score
	scores, err := repository.NewScoreRepository(db).GetScoresByRoundId(second.Id)
	assert.Nil(t, err)
	assert.Len(t, scores, 1)
	updated, err := roundService.UpdateRoundInfo(second.Id, date(2024, 6, 24), "Sunny Hill", []ScoreEdit{
		{Id: scores[0].Id, Score: 86},
	})
	assert.Nil(t, err)
	assert.Equal(t, date(2024, 6, 24).Unix(), updated.Date.Unix())

	numbers := roundNumbers(t)
	assert.Equal(t, 1, numbers[second.Id])
	assert.Equal(t, 2, numbers[first.Id])

	memberAfter, err := NewMemberService(db).GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 16.0, memberAfter.Handicap) // mean(90, 86) - 72
}

func TestUpdateRoundInfoRejectsForeignScore(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "Yoon")

	first, err := roundService.CreateRound(date(2024, 8, 1), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 90}})
	assert.Nil(t, err)
	second, err := roundService.CreateRound(date(2024, 8, 8), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 85}})
	assert.Nil(t, err)

	foreignScores, err := repository.NewScoreRepository(db).GetScoresByRoundId(first.Id)
	assert.Nil(t, err)
	_, err = roundService.UpdateRoundInfo(second.Id, date(2024, 8, 8), "Pine Valley", []ScoreEdit{
		{Id: foreignScores[0].Id, Score: 70},
	})
	assert.NotNil(t, err)
}

func TestDeleteMemberLeavesOtherHandicapsAlone(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	memberService := NewMemberService(db)
	memberA := createMember(t, "A")
	memberB := createMember(t, "B")

	_, err := roundService.CreateRound(date(2024, 9, 1), "Pine Valley", []ScoreEntry{
		{MemberId: &memberA.Id, Score: 90},
		{MemberId: &memberB.Id, Score: 80},
	})
	assert.Nil(t, err)

	err = memberService.DeleteMember(memberA.Id)
	assert.Nil(t, err)

	memberBAfter, err := memberService.GetMemberById(memberB.Id)
	assert.Nil(t, err)
	assert.Equal(t, 8.0, memberBAfter.Handicap)
	numbers := roundNumbers(t)
	assert.Len(t, numbers, 1)
}

func TestDashboardStats(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	statsService := NewStatsService(db)
	member := createMember(t, "Jung")

	stats, err := statsService.GetDashboardStats()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), stats.TotalRounds)
	assert.Equal(t, "0.0", stats.AverageScore)
	assert.Nil(t, stats.BestScore)

	_, err = roundService.CreateRound(date(2024, 10, 1), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 90}})
	assert.Nil(t, err)
	_, err = roundService.CreateRound(date(2024, 10, 8), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 81}})
	assert.Nil(t, err)

	stats, err = statsService.GetDashboardStats()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), stats.TotalRounds)
	assert.Equal(t, "85.5", stats.AverageScore)
	assert.Equal(t, 81, *stats.BestScore)
}

func TestCreateRoundsOutOfOrder(t *testing.T) {
	defer TearDown()
	roundService := NewRoundService(db)
	member := createMember(t, "A")

	later, err := roundService.CreateRound(date(2024, 1, 10), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 90}})
	assert.Nil(t, err)
	earlier, err := roundService.CreateRound(date(2024, 1, 5), "Pine Valley", []ScoreEntry{{MemberId: &member.Id, Score: 80}})
	assert.Nil(t, err)

	numbers := roundNumbers(t)
	assert.Equal(t, 1, numbers[earlier.Id])
	assert.Equal(t, 2, numbers[later.Id])

	memberAfter, err := NewMemberService(db).GetMemberById(member.Id)
	assert.Nil(t, err)
	assert.Equal(t, 13.0, memberAfter.Handicap)
}
