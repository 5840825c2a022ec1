//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"waitline/internal/domain/waitlist"
	"waitline/internal/handler/api"
	resdto "waitline/internal/handler/dto/response"
	"waitline/internal/usecase/commands"
	"waitline/internal/usecase/queries"
	"waitline/tests/common/builder"
	"waitline/tests/common/httptest"
	"waitline/tests/common/testutil"
	commandsmock "waitline/tests/mock/commands"
	queriesmock "waitline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WaitlistHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWaitlistCommands
	mockQueries  *queriesmock.MockWaitlistQueries
	handler      *api.WaitlistHandler
	userID       uuid.UUID
}

func (s *WaitlistHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWaitlistCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWaitlistQueries(s.mockCtrl)
	s.handler = api.NewWaitlistHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: authenticated when a bearer token is present
	withUser := func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.userID)
		}
	}

	s.router.POST("/waitlist/join", withUser, s.handler.Join)
	s.router.GET("/waitlist/status", withUser, s.handler.Status)
	s.router.DELETE("/waitlist/leave", withUser, s.handler.Leave)
	s.router.GET("/waitlist/list", withUser, s.handler.List)
	s.router.PUT("/waitlist/notify/:id", withUser, s.handler.Notify)
	s.router.PUT("/waitlist/seat/:id", withUser, s.handler.Seat)
}

func (s *WaitlistHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWaitlistHandlerSuite(t *testing.T) {
	suite.Run(t, new(WaitlistHandlerTestSuite))
}

func (s *WaitlistHandlerTestSuite) TestJoin() {
	url := "/waitlist/join"
	reqBody := builder.NewWaitlistBuilder().BuildJoinDTO()

	s.Run("success: returns 201 with queue position", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.JoinResult{
				QueueNumber: 5,
				WaitMinutes: 60,
				Position:    5,
				Status:      waitlist.StatusWaiting,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)
		s.Equal("Added to waiting list", env.Message)

		var data resdto.JoinData
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal(5, data.QueueNumber)
		s.Equal(60, data.WaitMinutes)
		s.Equal("waiting", data.Status)
	})

	s.Run("duplicate: returns 400 echoing the existing entry", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.JoinResult{
				QueueNumber:   3,
				WaitMinutes:   30,
				Position:      2,
				Status:        waitlist.StatusWaiting,
				AlreadyQueued: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.False(env.Success)
		s.Equal("Already in waiting list", env.Message)

		var data resdto.JoinData
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal(3, data.QueueNumber)
		s.Equal(2, data.Position)
	})

	s.Run("error: queue full returns 400", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrQueueFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Waiting list is full")
	})

	s.Run("error: domain validation returns 400", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "party size zero", mutate: testutil.Field("party_size", 0)},
			{name: "missing party size", mutate: testutil.Field("party_size", nil)},
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing phone number", mutate: testutil.Field("phone_number", nil)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *WaitlistHandlerTestSuite) TestStatus() {
	url := "/waitlist/status"

	s.Run("success: returns live position and estimate", func() {
		s.mockQueries.EXPECT().StatusByUser(gomock.Any(), s.userID).
			Return(&queries.WaitlistStatusView{
				Status:      "waiting",
				QueueNumber: 4,
				WaitMinutes: 30,
				Position:    2,
				PartySize:   3,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)

		var data queries.WaitlistStatusView
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal(2, data.Position)
		s.Equal(30, data.WaitMinutes)
	})

	s.Run("error: not in queue returns 404", func() {
		s.mockQueries.EXPECT().StatusByUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrNotInQueue).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not in waiting list")
	})
}

func (s *WaitlistHandlerTestSuite) TestLeave() {
	url := "/waitlist/leave"

	s.Run("success: cancels own entry", func() {
		record := builder.NewWaitlistBuilder().WithUserID(s.userID).WithStatus("cancelled").BuildRecord()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)
		s.Equal("Removed from waiting list", env.Message)
	})

	s.Run("error: no active entry returns 404", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.userID).
			Return(nil, commands.ErrNoActiveEntry).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not in waiting list")
	})
}

func (s *WaitlistHandlerTestSuite) TestList() {
	url := "/waitlist/list"

	s.Run("success: returns count and entries", func() {
		entries := []*queries.WaitlistEntryView{
			builder.NewWaitlistBuilder().WithQueueNumber(1).BuildView(),
			builder.NewWaitlistBuilder().WithQueueNumber(2).WithStatus("notified").BuildView(),
		}
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)

		var data struct {
			Count   int                          `json:"count"`
			Entries []*queries.WaitlistEntryView `json:"entries"`
		}
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal(2, data.Count)
		s.Len(data.Entries, 2)
	})

	s.Run("success: empty queue yields an empty list, not null", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		var data struct {
			Count   int               `json:"count"`
			Entries []json.RawMessage `json:"entries"`
		}
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal(0, data.Count)
		s.NotNil(data.Entries)
	})
}

func (s *WaitlistHandlerTestSuite) TestNotify() {
	entryID := uuid.New()
	url := "/waitlist/notify/" + entryID.String()

	s.Run("success: marks the entry notified", func() {
		record := builder.NewWaitlistBuilder().WithStatus("notified").BuildRecord()
		s.mockCommands.EXPECT().Notify(gomock.Any(), entryID).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)
		s.Equal("Customer notified", env.Message)

		var data resdto.EntryData
		s.NoError(json.Unmarshal(env.Data, &data))
		s.Equal("notified", data.Status)
	})

	s.Run("error: invalid id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/waitlist/notify/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "entry not found",
				commandsError:  commands.ErrEntryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Waitlist entry not found",
			},
			{
				name:           "already notified",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not in a valid state",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Notify(gomock.Any(), entryID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *WaitlistHandlerTestSuite) TestSeat() {
	entryID := uuid.New()
	url := "/waitlist/seat/" + entryID.String()

	s.Run("success: marks the entry seated", func() {
		record := builder.NewWaitlistBuilder().WithStatus("seated").BuildRecord()
		s.mockCommands.EXPECT().Seat(gomock.Any(), entryID).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.True(env.Success)
		s.Equal("Customer seated", env.Message)
	})

	s.Run("error: seating a cancelled entry returns 409", func() {
		s.mockCommands.EXPECT().Seat(gomock.Any(), entryID).
			Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a valid state")
	})
}
