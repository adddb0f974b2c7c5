package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/keeperbase/keeperbase/internal/dto"
)

func issuePaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *Error
	require.ErrorAs(t, err, &verr)
	paths := make([]string, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func issueMessage(t *testing.T, err error, path string) string {
	t.Helper()
	var verr *Error
	require.ErrorAs(t, err, &verr)
	for _, issue := range verr.Issues {
		if issue.Path == path {
			return issue.Message
		}
	}
	t.Fatalf("no issue for path %q, got %+v", path, verr.Issues)
	return ""
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	err := Check(&dto.RegisterRequest{})
	require.Error(t, err)

	paths := issuePaths(t, err)
	require.Contains(t, paths, "email")
	require.Contains(t, paths, "password")
	require.Contains(t, paths, "name")
}

func TestCheckEmailAndLengthMessages(t *testing.T) {
	err := Check(&dto.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "A",
	})
	require.Error(t, err)

	require.Equal(t, "must be a valid email address", issueMessage(t, err, "email"))
	require.Equal(t, "must be at least 8 characters", issueMessage(t, err, "password"))
	require.Equal(t, "must be at least 2 characters", issueMessage(t, err, "name"))
}

func TestCheckNestedSlicePaths(t *testing.T) {
	err := Check(&dto.BulkAttendanceRequest{
		Entries: []dto.AttendanceEntry{
			{GoalkeeperID: uuid.New(), Status: "present"},
			{GoalkeeperID: uuid.New(), Status: "late"},
		},
	})
	require.Error(t, err)

	paths := issuePaths(t, err)
	require.Contains(t, paths, "entries[1].status")
	require.NotContains(t, paths, "entries[0].status")
	require.Equal(t, "must be one of: present, absent, injured, excused",
		issueMessage(t, err, "entries[1].status"))
}

func TestTimeStringRule(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "07:15:30", "23:59:59"}
	for _, v := range valid {
		req := dto.CreateSessionRequest{Title: "Morning drills", SessionDate: "2026-03-14", StartTime: v}
		require.NoError(t, Check(&req), "expected %q to be accepted", v)
	}

	invalid := []string{"24:00", "9:30", "12:60", "12:00:60", "noon"}
	for _, v := range invalid {
		req := dto.CreateSessionRequest{Title: "Morning drills", SessionDate: "2026-03-14", StartTime: v}
		err := Check(&req)
		require.Error(t, err, "expected %q to be rejected", v)
		require.Equal(t, "must be a valid time in HH:MM or HH:MM:SS format",
			issueMessage(t, err, "start_time"))
	}
}

func TestDateRule(t *testing.T) {
	req := dto.CreateSessionRequest{Title: "Morning drills", SessionDate: "14-03-2026"}
	err := Check(&req)
	require.Error(t, err)
	require.Equal(t, "must be a valid date in YYYY-MM-DD format",
		issueMessage(t, err, "session_date"))
}

func TestCreateStatisticCrossFieldRules(t *testing.T) {
	req := dto.CreateStatisticRequest{
		GoalkeeperID:   uuid.New(),
		Season:         "2025/26",
		MatchesPlayed:  10,
		CleanSheets:    11,
		PenaltiesFaced: 2,
		PenaltiesSaved: 3,
	}
	err := Check(&req)
	require.Error(t, err)

	require.Equal(t, "must not exceed matches_played", issueMessage(t, err, "clean_sheets"))
	require.Equal(t, "must not exceed penalties_faced", issueMessage(t, err, "penalties_saved"))

	req.CleanSheets = 10
	req.PenaltiesSaved = 2
	require.NoError(t, Check(&req))
}

func TestUpdateStatisticRulesNeedBothSides(t *testing.T) {
	eleven := 11
	// Only one side of the invariant present: the payload alone cannot prove
	// a violation, so the struct-level rule stays quiet.
	require.NoError(t, Check(&dto.UpdateStatisticRequest{CleanSheets: &eleven}))

	ten := 10
	err := Check(&dto.UpdateStatisticRequest{MatchesPlayed: &ten, CleanSheets: &eleven})
	require.Error(t, err)
	require.Equal(t, "must not exceed matches_played", issueMessage(t, err, "clean_sheets"))
}

func TestStatisticInvariants(t *testing.T) {
	require.NoError(t, StatisticInvariants(10, 10, 5, 5))

	err := StatisticInvariants(10, 11, 5, 6)
	require.Error(t, err)

	paths := issuePaths(t, err)
	require.Contains(t, paths, "clean_sheets")
	require.Contains(t, paths, "penalties_saved")
}
