package confirmation_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tavernkeep/guild-api/internal/errors"
	mockclock "github.com/tavernkeep/guild-api/internal/pkg/clock/mock"
	"github.com/tavernkeep/guild-api/internal/repositories/confirmation"
	"github.com/tavernkeep/guild-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	miniRedis  *miniredis.Miniredis
	cleanup    func()
	mockClock  *mockclock.MockClock
	repository confirmation.Repository
	ctx        context.Context
	fixedTime  time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	client, mr, cleanup := testutils.CreateTestRedisClient(s.T())
	s.miniRedis = mr
	s.cleanup = cleanup
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()

	s.fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := confirmation.NewRedis(&confirmation.RedisConfig{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repository = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) TestCreateAndConsume() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	created, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.Require().NotNil(created.Session)
	s.Equal("user-123", created.Session.UserID)
	s.Equal("delete_profile", created.Session.Action)
	s.Equal(s.fixedTime.Add(confirmation.DefaultTTL), created.Session.ExpiresAt)

	consumed, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.Equal("user-123", consumed.Session.UserID)
}

func (s *RedisRepositoryTestSuite) TestConsume_SingleUse() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	_, err = s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	output, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestConsume_TakesSessionInOneCall() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.Require().True(s.miniRedis.Exists("confirm:user-123:delete_profile"))

	// The read and the delete are one command, so the key is gone the
	// moment any caller gets the session back.
	_, err = s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("confirm:user-123:delete_profile"))
}

func (s *RedisRepositoryTestSuite) TestConsume_NoSession() {
	output, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestConsume_ExpiredSession() {
	// Created at the fixed time, consumed a minute later. The store may
	// not have evicted the key yet, so the read-side expiry check applies.
	s.mockClock.EXPECT().Now().Return(s.fixedTime)
	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	s.mockClock.EXPECT().Now().Return(s.fixedTime.Add(time.Minute))
	output, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestConsume_EvictedSession() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	s.miniRedis.FastForward(confirmation.DefaultTTL + time.Second)

	output, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreate_ReplacesPendingSession() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime)
	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	later := s.fixedTime.Add(10 * time.Second)
	s.mockClock.EXPECT().Now().Return(later)
	created, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.Equal(later.Add(confirmation.DefaultTTL), created.Session.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestCancel() {
	s.mockClock.EXPECT().Now().Return(s.fixedTime).AnyTimes()

	_, err := s.repository.Create(s.ctx, confirmation.CreateInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)

	canceled, err := s.repository.Cancel(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().NoError(err)
	s.Equal("user-123", canceled.Session.UserID)

	_, err = s.repository.Consume(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCancel_NoSession() {
	output, err := s.repository.Cancel(s.ctx, confirmation.ConsumeInput{
		UserID: "user-123",
		Action: "delete_profile",
	})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidationErrors() {
	testCases := []struct {
		name string
		run  func() error
	}{
		{
			name: "create with empty user ID",
			run: func() error {
				_, err := s.repository.Create(s.ctx, confirmation.CreateInput{Action: "delete_profile"})
				return err
			},
		},
		{
			name: "create with empty action",
			run: func() error {
				_, err := s.repository.Create(s.ctx, confirmation.CreateInput{UserID: "user-123"})
				return err
			},
		},
		{
			name: "consume with empty user ID",
			run: func() error {
				_, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{Action: "delete_profile"})
				return err
			},
		},
		{
			name: "consume with empty action",
			run: func() error {
				_, err := s.repository.Consume(s.ctx, confirmation.ConsumeInput{UserID: "user-123"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.run()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
