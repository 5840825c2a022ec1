//go:build e2e

package waitlist_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	resdto "waitline/internal/handler/dto/response"
	"waitline/internal/usecase/queries"
	"waitline/tests/common/authtest"
	"waitline/tests/common/dbtest"
	"waitline/tests/common/httptest"
	"waitline/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// bcrypt hash of "password123", for bulk fixture inserts
const fillerPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type WaitlistE2ETestSuite struct {
	e2e.SharedSuite
}

func TestWaitlistE2E(t *testing.T) {
	suite.Run(t, new(WaitlistE2ETestSuite))
}

func (s *WaitlistE2ETestSuite) join(token, name, phone string, partySize int) *resdto.JoinData {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join",
		map[string]any{"name": name, "phone_number": phone, "party_size": partySize}, token)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	env := httptest.DecodeEnvelope(s.T(), rec)
	s.Require().True(env.Success)

	var data resdto.JoinData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	return &data
}

func (s *WaitlistE2ETestSuite) entryIDForUser(userID uuid.UUID) uuid.UUID {
	s.T().Helper()

	var entryID uuid.UUID
	err := s.DB.QueryRow(context.Background(), `
		SELECT id FROM waitlist_entries
		WHERE user_id = $1 AND status IN ('waiting', 'notified')`,
		userID).Scan(&entryID)
	s.Require().NoError(err)
	return entryID
}

func (s *WaitlistE2ETestSuite) storedWaitMinutes(phoneNumber string) int {
	s.T().Helper()

	var stored int
	err := s.DB.QueryRow(context.Background(), `
		SELECT e.wait_minutes FROM waitlist_entries e
		JOIN users u ON u.id = e.user_id
		WHERE u.phone_number = $1 AND e.status IN ('waiting', 'notified')`,
		phoneNumber).Scan(&stored)
	s.Require().NoError(err)
	return stored
}

func (s *WaitlistE2ETestSuite) TestJoin() {
	s.Run("success: sequential joins get FIFO queue numbers and estimates", func() {
		tokenA := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819021110001", "Party A", "customer")
		tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819021110002", "Party B", "customer")

		first := s.join(tokenA, "Party A", "+819021110001", 2)
		s.Equal(1, first.QueueNumber)
		s.Equal(1, first.Position)
		s.Equal(0, first.WaitMinutes, "empty queue means no wait ahead")
		s.Equal("waiting", first.Status)

		second := s.join(tokenB, "Party B", "+819021110002", 4)
		s.Equal(2, second.QueueNumber)
		s.Equal(2, second.Position)
		s.Equal(15, second.WaitMinutes, "one party ahead at join time")
	})

	s.Run("error: duplicate join echoes the existing entry without inserting", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "+819021120001", "Dup Party", "customer")
		token := authtest.LoginUser(s.T(), s.Router, "+819021120001", "password123")

		first := s.join(token, "Dup Party", "+819021120001", 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join",
			map[string]any{"name": "Dup Party", "phone_number": "+819021120001", "party_size": 3}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Already in waiting list")

		env := httptest.DecodeEnvelope(s.T(), rec)
		s.False(env.Success)
		var echoed resdto.JoinData
		s.Require().NoError(json.Unmarshal(env.Data, &echoed))
		s.Equal(first.QueueNumber, echoed.QueueNumber)

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM waitlist_entries WHERE user_id = $1", userID).Scan(&count)
		s.NoError(err)
		s.Equal(1, count, "duplicate join must not create a second entry")
	})

	s.Run("error: full queue rejects new joins", func() {
		capacity := s.Config.Waitlist.MaxQueueCapacity
		_, err := s.DB.Exec(context.Background(), `
			WITH filler AS (
				INSERT INTO users (phone_number, name, password_hash, role, is_active)
				SELECT '+8190555' || lpad(i::text, 5, '0'), 'Filler ' || i, $1, 'customer', true
				FROM generate_series(1, $2::int) AS i
				RETURNING id
			)
			INSERT INTO waitlist_entries (user_id, name, phone_number, party_size, status, queue_number)
			SELECT id, 'Filler', '+81900000000', 2, 'waiting', row_number() OVER ()
			FROM filler`,
			fillerPasswordHash, capacity)
		s.Require().NoError(err)

		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819021130001", "Late Party", "customer")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join",
			map[string]any{"name": "Late Party", "phone_number": "+819021130001", "party_size": 2}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Waiting list is full")
	})

	s.Run("error: malformed party is rejected", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819021140001", "Bad Party", "customer")

		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "zero party size", body: map[string]any{"name": "Bad Party", "phone_number": "+819021140001", "party_size": 0}},
			{name: "missing name", body: map[string]any{"phone_number": "+819021140001", "party_size": 2}},
			{name: "missing phone", body: map[string]any{"name": "Bad Party", "party_size": 2}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join", tc.body, token)
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: requires authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join",
			map[string]any{"name": "Anon", "phone_number": "+819021150001", "party_size": 2}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *WaitlistE2ETestSuite) TestStatus() {
	s.Run("success: position and wait shrink as parties ahead are seated", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819022220000", "Host", "staff")
		firstID := dbtest.CreateTestUser(s.T(), s.DB, "+819022220001", "Party A", "customer")
		tokenA := authtest.LoginUser(s.T(), s.Router, "+819022220001", "password123")
		tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819022220002", "Party B", "customer")

		s.join(tokenA, "Party A", "+819022220001", 2)
		joinB := s.join(tokenB, "Party B", "+819022220002", 3)
		s.Equal(2, joinB.Position)
		s.Equal(15, joinB.WaitMinutes, "join counts only parties ahead")

		// The status read recomputes from live position (self included) and
		// repairs the stored join-time estimate upward.
		beforeRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/status", nil, tokenB)
		s.Require().Equal(http.StatusOK, beforeRec.Code, beforeRec.Body.String())
		var before queries.WaitlistStatusView
		s.Require().NoError(json.Unmarshal(httptest.DecodeEnvelope(s.T(), beforeRec).Data, &before))
		s.Equal(2, before.Position)
		s.Equal(30, before.WaitMinutes)
		s.Equal(30, s.storedWaitMinutes("+819022220002"))

		entryA := s.entryIDForUser(firstID)
		seatRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/seat/"+entryA.String(), nil, staffToken)
		s.Require().Equal(http.StatusOK, seatRec.Code, seatRec.Body.String())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/status", nil, tokenB)
		env := httptest.DecodeEnvelope(s.T(), rec)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.True(env.Success)

		var status queries.WaitlistStatusView
		s.Require().NoError(json.Unmarshal(env.Data, &status))

		expected := &queries.WaitlistStatusView{
			Status:      "waiting",
			QueueNumber: 2, // queue number is stable even as position moves
			WaitMinutes: 15,
			Position:    1,
			PartySize:   3,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(queries.WaitlistStatusView{}, "NotifiedAt"),
		}
		if diff := cmp.Diff(expected, &status, opts...); diff != "" {
			s.T().Errorf("Status response mismatch (-want +got):\n%s", diff)
		}

		// The now-stale estimate gets repaired back down on read.
		s.Equal(15, s.storedWaitMinutes("+819022220002"))
	})

	s.Run("error: 404 when not in queue", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819022230001", "No Entry", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/status", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not in waiting list")
	})
}

func (s *WaitlistE2ETestSuite) TestLeave() {
	s.Run("success: cancelling frees the user but not the queue number", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819023330001", "Leaver", "customer")
		first := s.join(token, "Leaver", "+819023330001", 2)
		s.Equal(1, first.QueueNumber)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/waitlist/leave", nil, token)
		env := httptest.DecodeEnvelope(s.T(), rec)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.True(env.Success)

		var entry resdto.EntryData
		s.Require().NoError(json.Unmarshal(env.Data, &entry))
		s.Equal("cancelled", entry.Status)

		statusRec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/status", nil, token)
		s.Equal(http.StatusNotFound, statusRec.Code)

		// Rejoining works and queue numbers are never reused.
		second := s.join(token, "Leaver", "+819023330001", 2)
		s.Equal(2, second.QueueNumber)
	})

	s.Run("error: 404 without an active entry", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819023340001", "No Entry", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/waitlist/leave", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not in waiting list")
	})
}

func (s *WaitlistE2ETestSuite) TestStaffOperations() {
	s.Run("success: notify then seat walks the entry through its lifecycle", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024440000", "Host", "staff")
		customerID := dbtest.CreateTestUser(s.T(), s.DB, "+819024440001", "Guest", "customer")
		customerToken := authtest.LoginUser(s.T(), s.Router, "+819024440001", "password123")

		s.join(customerToken, "Guest", "+819024440001", 2)
		entryID := s.entryIDForUser(customerID)

		notifyRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/notify/"+entryID.String(), nil, staffToken)
		s.Require().Equal(http.StatusOK, notifyRec.Code, notifyRec.Body.String())

		var notified resdto.EntryData
		env := httptest.DecodeEnvelope(s.T(), notifyRec)
		s.Require().NoError(json.Unmarshal(env.Data, &notified))
		s.Equal("notified", notified.Status)
		s.NotNil(notified.NotifiedAt)

		// Re-notifying a notified entry is a conflict.
		again := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/notify/"+entryID.String(), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), again, http.StatusConflict, "not in a valid state")

		seatRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/seat/"+entryID.String(), nil, staffToken)
		s.Require().Equal(http.StatusOK, seatRec.Code, seatRec.Body.String())

		var seated resdto.EntryData
		env = httptest.DecodeEnvelope(s.T(), seatRec)
		s.Require().NoError(json.Unmarshal(env.Data, &seated))
		s.Equal("seated", seated.Status)
		s.NotNil(seated.SeatedAt)
		firstNotifiedAt := notified.NotifiedAt
		s.Require().NotNil(seated.NotifiedAt)
		s.WithinDuration(*firstNotifiedAt, *seated.NotifiedAt, time.Second, "notified_at must not be restamped")

		// Seated is terminal.
		reseat := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/seat/"+entryID.String(), nil, staffToken)
		s.Equal(http.StatusConflict, reseat.Code)
	})

	s.Run("success: seating straight from waiting skips notification", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024450000", "Host", "staff")
		customerID := dbtest.CreateTestUser(s.T(), s.DB, "+819024450001", "Walkup", "customer")
		customerToken := authtest.LoginUser(s.T(), s.Router, "+819024450001", "password123")

		s.join(customerToken, "Walkup", "+819024450001", 2)
		entryID := s.entryIDForUser(customerID)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/seat/"+entryID.String(), nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var seated resdto.EntryData
		env := httptest.DecodeEnvelope(s.T(), rec)
		s.Require().NoError(json.Unmarshal(env.Data, &seated))
		s.Equal("seated", seated.Status)
		s.Nil(seated.NotifiedAt)
	})

	s.Run("success: list shows active entries in arrival order", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024460000", "Host", "staff")
		tokenA := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024460001", "Party A", "customer")
		tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024460002", "Party B", "customer")

		s.join(tokenA, "Party A", "+819024460001", 2)
		s.join(tokenB, "Party B", "+819024460002", 4)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/list", nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		env := httptest.DecodeEnvelope(s.T(), rec)
		var list struct {
			Count   int                          `json:"count"`
			Entries []*queries.WaitlistEntryView `json:"entries"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &list))
		s.Equal(2, list.Count)
		s.Require().Len(list.Entries, 2)
		s.Equal(1, list.Entries[0].QueueNumber)
		s.Equal(2, list.Entries[1].QueueNumber)
		s.Equal("Party A", list.Entries[0].Name)
	})

	s.Run("success: empty list returns zero count", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024470000", "Host", "staff")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/waitlist/list", nil, staffToken)
		s.Require().Equal(http.StatusOK, rec.Code)

		env := httptest.DecodeEnvelope(s.T(), rec)
		var list struct {
			Count   int   `json:"count"`
			Entries []any `json:"entries"`
		}
		s.Require().NoError(json.Unmarshal(env.Data, &list))
		s.Equal(0, list.Count)
		s.NotNil(list.Entries, "entries must be an empty array, not null")
	})

	s.Run("error: customers cannot call staff endpoints", func() {
		customerToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024480001", "Guest", "customer")
		entryID := uuid.New().String()

		cases := []struct {
			name   string
			method string
			path   string
		}{
			{name: "list", method: http.MethodGet, path: "/api/waitlist/list"},
			{name: "notify", method: http.MethodPut, path: "/api/waitlist/notify/" + entryID},
			{name: "seat", method: http.MethodPut, path: "/api/waitlist/seat/" + entryID},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.Router, tc.method, tc.path, nil, customerToken)
				s.Equal(http.StatusForbidden, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: unknown and malformed entry IDs", func() {
		staffToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "+819024490000", "Host", "staff")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/notify/"+uuid.New().String(), nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Waitlist entry not found")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			"/api/waitlist/notify/not-a-uuid", nil, staffToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry ID")
	})
}

func (s *WaitlistE2ETestSuite) TestConcurrentJoin() {
	s.Run("success: parallel joins get distinct queue numbers", func() {
		const workers = 5

		tokens := make([]string, workers)
		for i := range workers {
			phone := fmt.Sprintf("+8190255500%02d", i+1)
			tokens[i] = authtest.CreateAndLogin(s.T(), s.DB, s.Router, phone, "Racer", "customer")
		}

		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist/join",
					map[string]any{"name": "Racer", "phone_number": "+81900000000", "party_size": 2}, tokens[i])
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusCreated, code)
		}

		rows, err := s.DB.Query(context.Background(),
			"SELECT queue_number FROM waitlist_entries ORDER BY queue_number")
		s.Require().NoError(err)
		defer rows.Close()

		seen := map[int]bool{}
		for rows.Next() {
			var n int
			s.Require().NoError(rows.Scan(&n))
			s.False(seen[n], "queue numbers must be unique")
			seen[n] = true
		}
		s.Require().NoError(rows.Err())
		s.Len(seen, workers)
		for n := 1; n <= workers; n++ {
			s.True(seen[n], "queue numbers must be dense from 1")
		}
	})
}
