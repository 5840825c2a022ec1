//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"waitline/internal/infra"
	"waitline/internal/pkg/config"
	"waitline/internal/usecase/queries"
	"waitline/tests/common/builder"
	queriesmock "waitline/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitlistQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockWaitlistReadStore
	mockRepairer  *queriesmock.MockWaitRepairer
	queries       queries.WaitlistQueries
}

func (s *WaitlistQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockWaitlistReadStore(s.mockCtrl)
	s.mockRepairer = queriesmock.NewMockWaitRepairer(s.mockCtrl)
	s.queries = queries.NewWaitlistQueries(s.mockReadStore, s.mockRepairer, config.WaitlistConfig{
		AvgWaitMinutes:   15,
		MaxQueueCapacity: 50,
	})
}

func (s *WaitlistQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitlistQueriesSuite(t *testing.T) {
	suite.Run(t, new(WaitlistQueriesTestSuite))
}

func (s *WaitlistQueriesTestSuite) TestStatusByUser() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("success: recomputes position and wait from live queue state", func() {
		entry := builder.NewWaitlistBuilder().WithUserID(userID).WithQueueNumber(7).BuildView()
		entry.WaitMinutes = 45 // stored estimate already matches position 3

		s.mockReadStore.EXPECT().FindActiveByUserID(gomock.Any(), userID).Return(entry, nil)
		s.mockReadStore.EXPECT().CountActiveUpTo(gomock.Any(), 7).Return(3, nil)

		status, err := s.queries.StatusByUser(ctx, userID)
		s.NoError(err)
		s.Equal(3, status.Position)
		s.Equal(45, status.WaitMinutes)
		s.Equal(7, status.QueueNumber)
		s.Equal("waiting", status.Status)
	})

	s.Run("success: repairs stale stored estimate", func() {
		entry := builder.NewWaitlistBuilder().WithUserID(userID).WithQueueNumber(7).BuildView()
		entry.WaitMinutes = 90 // parties ahead have since been seated

		s.mockReadStore.EXPECT().FindActiveByUserID(gomock.Any(), userID).Return(entry, nil)
		s.mockReadStore.EXPECT().CountActiveUpTo(gomock.Any(), 7).Return(2, nil)
		s.mockRepairer.EXPECT().RepairWaitMinutes(gomock.Any(), entry.ID, 30).Return(nil)

		status, err := s.queries.StatusByUser(ctx, userID)
		s.NoError(err)
		s.Equal(2, status.Position)
		s.Equal(30, status.WaitMinutes)
	})

	s.Run("success: read survives a failed repair", func() {
		entry := builder.NewWaitlistBuilder().WithUserID(userID).WithQueueNumber(4).BuildView()
		entry.WaitMinutes = 60

		s.mockReadStore.EXPECT().FindActiveByUserID(gomock.Any(), userID).Return(entry, nil)
		s.mockReadStore.EXPECT().CountActiveUpTo(gomock.Any(), 4).Return(1, nil)
		s.mockRepairer.EXPECT().RepairWaitMinutes(gomock.Any(), entry.ID, 15).Return(errors.New("connection lost"))

		status, err := s.queries.StatusByUser(ctx, userID)
		s.NoError(err)
		s.Equal(15, status.WaitMinutes)
	})

	s.Run("error: no active entry maps to ErrNotInQueue", func() {
		s.mockReadStore.EXPECT().FindActiveByUserID(gomock.Any(), userID).
			Return(nil, infra.WrapRepoErr("active waitlist entry not found", errors.New("no rows"), infra.KindNotFound))

		status, err := s.queries.StatusByUser(ctx, userID)
		s.Nil(status)
		s.ErrorIs(err, queries.ErrNotInQueue)
	})

	s.Run("error: store failures pass through", func() {
		dbErr := infra.WrapRepoErr("query failed", errors.New("connection refused"))
		s.mockReadStore.EXPECT().FindActiveByUserID(gomock.Any(), userID).Return(nil, dbErr)

		_, err := s.queries.StatusByUser(ctx, userID)
		s.Error(err)
		s.NotErrorIs(err, queries.ErrNotInQueue)
	})
}

func (s *WaitlistQueriesTestSuite) TestListActive() {
	ctx := context.Background()

	s.Run("success: returns entries in store order", func() {
		entries := []*queries.WaitlistEntryView{
			builder.NewWaitlistBuilder().WithQueueNumber(1).BuildView(),
			builder.NewWaitlistBuilder().WithQueueNumber(2).WithStatus("notified").BuildView(),
		}
		s.mockReadStore.EXPECT().FindAllActive(gomock.Any()).Return(entries, nil)

		result, err := s.queries.ListActive(ctx)
		s.NoError(err)
		s.Len(result, 2)
		s.Equal(1, result[0].QueueNumber)
	})

	s.Run("error: store failure passes through", func() {
		s.mockReadStore.EXPECT().FindAllActive(gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection refused")))

		_, err := s.queries.ListActive(ctx)
		s.Error(err)
	})
}
