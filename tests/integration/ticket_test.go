package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linskybing/ticketdesk/dto"
)

type projectFixture struct {
	adminToken  string
	workerToken string
	adminID     uint
	workerID    uint
	teamID      uint
	projectID   uint
}

// setupProjectFixture builds a team with a worker member and a project that
// designates the team as its worker team. The admin user created the team and
// project, so they hold admin role in both.
func setupProjectFixture(t *testing.T, prefix string, withWorkerTeam bool) projectFixture {
	var f projectFixture
	f.adminToken, f.adminID = registerAndLogin(t, prefix+"_admin", "123456")
	f.workerToken, f.workerID = registerAndLogin(t, prefix+"_worker", "123456")

	w := doRequest(t, "POST", "/teams", f.adminToken,
		map[string]string{"team_name": prefix + " team"}, http.StatusCreated)
	var team struct {
		TID uint `json:"t_id"`
	}
	decodeBody(t, w, &team)
	f.teamID = team.TID

	doRequest(t, "POST", fmt.Sprintf("/teams/%d/members/%d", f.teamID, f.workerID),
		f.adminToken, nil, http.StatusCreated)

	projectBody := map[string]interface{}{"project_name": prefix + " project"}
	if withWorkerTeam {
		projectBody["worker_team_id"] = f.teamID
	}
	w = doRequest(t, "POST", "/projects", f.adminToken, projectBody, http.StatusCreated)
	var project struct {
		PID uint `json:"p_id"`
	}
	decodeBody(t, w, &project)
	f.projectID = project.PID

	doRequest(t, "POST", fmt.Sprintf("/projects/%d/members/%d?role=worker", f.projectID, f.workerID),
		f.adminToken, nil, http.StatusCreated)

	return f
}

func (f projectFixture) ticketPath(suffix string) string {
	return fmt.Sprintf("/tickets%s?project_id=%d", suffix, f.projectID)
}

func TestTicketLifecycle(t *testing.T) {
	f := setupProjectFixture(t, "lifecycle", true)

	w := doRequest(t, "POST", f.ticketPath(""), f.adminToken, map[string]interface{}{
		"title":            "fan broken",
		"description":      "rack 3 is loud",
		"type":             "worker",
		"team_id":          f.teamID,
		"assigned_to_name": "lifecycle_work",
	}, http.StatusCreated)

	var ticket dto.TicketOut
	decodeBody(t, w, &ticket)
	require.NotZero(t, ticket.ID)
	assert.Equal(t, "open", ticket.Status)
	require.NotNil(t, ticket.WorkerTeam)
	assert.Equal(t, f.teamID, ticket.WorkerTeam.ID)
	require.NotNil(t, ticket.Assignee)
	assert.Equal(t, f.workerID, ticket.Assignee.ID)
	assert.Equal(t, f.adminID, ticket.Creator.ID)

	idPath := fmt.Sprintf("/%d", ticket.ID)

	// scoped read: right project hits, wrong project is a 404
	doRequest(t, "GET", f.ticketPath(idPath), f.adminToken, nil, http.StatusOK)
	doRequest(t, "GET", fmt.Sprintf("/tickets/%d?project_id=99999", ticket.ID),
		f.adminToken, nil, http.StatusNotFound)

	// only the assignee may transition
	doRequest(t, "PATCH", f.ticketPath(idPath+"/status"), f.adminToken,
		map[string]string{"status": "in_progress"}, http.StatusForbidden)

	// skipping in_progress is rejected
	doRequest(t, "PATCH", f.ticketPath(idPath+"/status"), f.workerToken,
		map[string]string{"status": "closed"}, http.StatusBadRequest)

	// feedback before close is rejected
	doRequest(t, "PATCH", f.ticketPath(idPath+"/feedback"), f.adminToken,
		map[string]interface{}{"feedback": "early", "confirmed": false}, http.StatusBadRequest)

	doRequest(t, "PATCH", f.ticketPath(idPath+"/status"), f.workerToken,
		map[string]string{"status": "in_progress"}, http.StatusOK)

	w = doRequest(t, "PATCH", f.ticketPath(idPath+"/status"), f.workerToken,
		map[string]string{"status": "closed"}, http.StatusOK)
	decodeBody(t, w, &ticket)
	assert.Equal(t, "closed", ticket.Status)
	assert.NotNil(t, ticket.ClosedAt)

	// closed is terminal
	doRequest(t, "PATCH", f.ticketPath(idPath+"/status"), f.workerToken,
		map[string]string{"status": "open"}, http.StatusBadRequest)

	// feedback is creator-only
	doRequest(t, "PATCH", f.ticketPath(idPath+"/feedback"), f.workerToken,
		map[string]interface{}{"feedback": "done", "confirmed": true}, http.StatusForbidden)

	w = doRequest(t, "PATCH", f.ticketPath(idPath+"/feedback"), f.adminToken,
		map[string]interface{}{"feedback": "still noisy", "confirmed": false}, http.StatusOK)
	decodeBody(t, w, &ticket)
	require.NotNil(t, ticket.Feedback)
	assert.Equal(t, "still noisy", *ticket.Feedback)

	// empty feedback preserves the stored text, confirmed is overwritten
	w = doRequest(t, "PATCH", f.ticketPath(idPath+"/feedback"), f.adminToken,
		map[string]interface{}{"feedback": "", "confirmed": true}, http.StatusOK)
	decodeBody(t, w, &ticket)
	require.NotNil(t, ticket.Feedback)
	assert.Equal(t, "still noisy", *ticket.Feedback)
	assert.True(t, ticket.Confirmed)

	// creator sees it under /mine, assignee no longer under /assigned
	w = doRequest(t, "GET", f.ticketPath("/mine"), f.adminToken, nil, http.StatusOK)
	var mine []dto.TicketOut
	decodeBody(t, w, &mine)
	require.Len(t, mine, 1)

	w = doRequest(t, "GET", f.ticketPath("/assigned"), f.workerToken, nil, http.StatusOK)
	var assigned []dto.TicketOut
	decodeBody(t, w, &assigned)
	assert.Empty(t, assigned)

	// delete: worker is neither creator nor project admin
	doRequest(t, "DELETE", f.ticketPath(idPath), f.workerToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", f.ticketPath(idPath), f.adminToken, nil, http.StatusNoContent)
	doRequest(t, "GET", f.ticketPath(idPath), f.adminToken, nil, http.StatusNotFound)
}

func TestCreateWorkerTicketWithoutWorkerTeam(t *testing.T) {
	f := setupProjectFixture(t, "nowt", false)

	doRequest(t, "POST", f.ticketPath(""), f.adminToken, map[string]interface{}{
		"title":       "needs a team",
		"description": "no worker team configured",
		"type":        "worker",
		"team_id":     f.teamID,
	}, http.StatusBadRequest)
}

func TestCreateTicketWorkerTeamMismatch(t *testing.T) {
	f := setupProjectFixture(t, "mismatch", true)

	doRequest(t, "POST", f.ticketPath(""), f.adminToken, map[string]interface{}{
		"title":          "bad worker team",
		"description":    "explicit id differs from the project's",
		"team_id":        f.teamID,
		"worker_team_id": f.teamID + 1000,
	}, http.StatusBadRequest)
}

func TestReassignTicket(t *testing.T) {
	f := setupProjectFixture(t, "reassign", true)

	w := doRequest(t, "POST", f.ticketPath(""), f.adminToken, map[string]interface{}{
		"title":       "reassign me",
		"description": "starts unassigned",
		"type":        "general",
		"team_id":     f.teamID,
	}, http.StatusCreated)
	var ticket dto.TicketOut
	decodeBody(t, w, &ticket)
	require.Nil(t, ticket.Assignee)

	idPath := fmt.Sprintf("/%d", ticket.ID)

	// non-admin caller is rejected
	doRequest(t, "PATCH", f.ticketPath(idPath+"/assignee"), f.workerToken,
		map[string]uint{"assigned_to": f.workerID}, http.StatusForbidden)

	// admin reassigns to the worker
	w = doRequest(t, "PATCH", f.ticketPath(idPath+"/assignee"), f.adminToken,
		map[string]uint{"assigned_to": f.workerID}, http.StatusOK)
	decodeBody(t, w, &ticket)
	require.NotNil(t, ticket.Assignee)
	assert.Equal(t, f.workerID, ticket.Assignee.ID)

	// an unavailable member can never be the target
	busyToken, busyID := registerAndLogin(t, "reassign_busy", "123456")
	doRequest(t, "POST", fmt.Sprintf("/teams/%d/members/%d", f.teamID, busyID),
		f.adminToken, nil, http.StatusCreated)
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/members/%d", f.projectID, busyID),
		f.adminToken, nil, http.StatusCreated)
	doRequest(t, "PUT", fmt.Sprintf("/teams/%d/availability?is_available=false", f.teamID),
		busyToken, nil, http.StatusOK)

	doRequest(t, "PATCH", f.ticketPath(idPath+"/assignee"), f.adminToken,
		map[string]uint{"assigned_to": busyID}, http.StatusBadRequest)
}
