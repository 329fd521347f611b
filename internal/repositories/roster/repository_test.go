package roster_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/character-sheet/internal/errors"
	"github.com/KirkDiggler/character-sheet/internal/repositories/roster"
	"github.com/KirkDiggler/character-sheet/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() roster.Repository
	repo    roster.Repository
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() roster.Repository { return roster.NewInMemory() },
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() roster.Repository {
			client, _ := testutils.CreateTestRedisClient(t)
			repo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("NewRedis: %v", err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) testRoster() *sheet.Roster {
	return testutils.CreateTestRoster(testutils.TestRosterID,
		testutils.CreateTestCharacter(testutils.TestCharacterID),
		testutils.CreateTestWizard("char_test_002"),
	)
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	input := s.testRoster()

	created, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: input})
	s.Require().NoError(err)
	s.Assert().Equal(input.ID, created.Roster.ID)

	got, err := s.repo.Get(s.ctx, roster.GetInput{ID: input.ID})
	s.Require().NoError(err)
	s.Assert().Equal(input.ID, got.Roster.ID)
	s.Require().Len(got.Roster.Characters, 2)
	s.Assert().Equal(testutils.CreateTestWizard("char_test_002"), got.Roster.Characters[1])
	s.Assert().Equal(testutils.TestTime.Unix(), got.Roster.CreatedAt)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: s.testRoster()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, roster.CreateInput{Roster: s.testRoster()})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, roster.CreateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, roster.CreateInput{Roster: &sheet.Roster{}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, roster.GetInput{ID: "nope"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, roster.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	input := s.testRoster()
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: input})
	s.Require().NoError(err)

	updated := input.Clone()
	updated.Characters[0].Attributes[sheet.AttributeStrength] = 12
	updated.Characters = append(updated.Characters, testutils.CreateTestCharacter("char_test_003"))
	updated.UpdatedAt = testutils.TestTime.Add(time.Minute).Unix()

	_, err = s.repo.Update(s.ctx, roster.UpdateInput{Roster: &updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, roster.GetInput{ID: input.ID})
	s.Require().NoError(err)
	s.Assert().Len(got.Roster.Characters, 3)
	s.Assert().Equal(12, got.Roster.Characters[0].Attributes[sheet.AttributeStrength])
	s.Assert().Equal(updated.UpdatedAt, got.Roster.UpdatedAt)
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, roster.UpdateInput{Roster: s.testRoster()})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, roster.UpdateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	input := s.testRoster()
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: input})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, roster.DeleteInput{ID: input.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, roster.GetInput{ID: input.ID})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, roster.DeleteInput{ID: input.ID})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, roster.DeleteInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestReturnedRosterIsIsolated() {
	input := s.testRoster()
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: input})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, roster.GetInput{ID: input.ID})
	s.Require().NoError(err)
	first.Roster.Characters[0].Attributes[sheet.AttributeStrength] = 99

	second, err := s.repo.Get(s.ctx, roster.GetInput{ID: input.ID})
	s.Require().NoError(err)
	s.Assert().Equal(10, second.Roster.Characters[0].Attributes[sheet.AttributeStrength])
}

type RedisTTLTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo roster.Repository
	ctx  context.Context
}

func TestRedisTTLSuite(t *testing.T) {
	suite.Run(t, new(RedisTTLTestSuite))
}

func (s *RedisTTLTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	repo, err := roster.NewRedis(&roster.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisTTLTestSuite) TestStoredUnderPrefixedKey() {
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: testutils.CreateTestRoster("r1")})
	s.Require().NoError(err)

	s.Assert().True(s.mr.Exists("roster:r1"))
	s.Assert().Equal(time.Hour, s.mr.TTL("roster:r1"))
}

func (s *RedisTTLTestSuite) TestUpdateRefreshesTTL() {
	r := testutils.CreateTestRoster("r1")
	_, err := s.repo.Create(s.ctx, roster.CreateInput{Roster: r})
	s.Require().NoError(err)

	s.mr.FastForward(40 * time.Minute)
	_, err = s.repo.Update(s.ctx, roster.UpdateInput{Roster: r})
	s.Require().NoError(err)
	s.Assert().Equal(time.Hour, s.mr.TTL("roster:r1"))

	s.mr.FastForward(61 * time.Minute)
	_, err = s.repo.Get(s.ctx, roster.GetInput{ID: "r1"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisTTLTestSuite) TestCorruptPayload() {
	s.Require().NoError(s.mr.Set("roster:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, roster.GetInput{ID: "bad"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *RedisTTLTestSuite) TestStorageFailure() {
	s.mr.SetError("server down")

	_, err := s.repo.Get(s.ctx, roster.GetInput{ID: "r1"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func TestNewRedisValidation(t *testing.T) {
	_, err := roster.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = roster.NewRedis(&roster.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	client, _ := testutils.CreateTestRedisClient(t)
	_, err = roster.NewRedis(&roster.RedisConfig{Client: client, TTL: -time.Second})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
