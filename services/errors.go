package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map them onto
// 404 / 403 / 400 via respondServiceError.
var (
	// not found
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrAssigneeNotFound   = errors.New("assignee not found in this project")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAttachmentNotFound = errors.New("attachment not found")

	// forbidden
	ErrNotProjectMember    = errors.New("not a member of this project")
	ErrNotProjectAdmin     = errors.New("requires project admin role")
	ErrNotTeamMember       = errors.New("not a member of this team")
	ErrNotTeamAdmin        = errors.New("requires team admin role")
	ErrNotAssignee         = errors.New("only the assignee can update status")
	ErrNotCreator          = errors.New("only the creator can leave feedback")
	ErrNotPermitted        = errors.New("not permitted")
	ErrTargetNotAssignable = errors.New("target must hold member or worker role")

	// bad request
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrTicketNotClosed     = errors.New("feedback only after close")
	ErrWorkerTeamMismatch  = errors.New("worker team not assigned to this project")
	ErrNoWorkerTeam        = errors.New("no worker team assigned to project")
	ErrDuplicateMembership = errors.New("user already in team")
	ErrUserUnavailable     = errors.New("user not available")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

// IsNotFound reports whether err maps to a 404.
func IsNotFound(err error) bool {
	return matchAny(err,
		ErrUserNotFound, ErrTeamNotFound, ErrProjectNotFound,
		ErrTicketNotFound, ErrAssigneeNotFound, ErrMembershipNotFound,
		ErrAttachmentNotFound)
}

// IsForbidden reports whether err maps to a 403.
func IsForbidden(err error) bool {
	return matchAny(err,
		ErrNotProjectMember, ErrNotProjectAdmin, ErrNotTeamMember,
		ErrNotTeamAdmin, ErrNotAssignee, ErrNotCreator, ErrNotPermitted,
		ErrTargetNotAssignable)
}

// IsBadRequest reports whether err maps to a 400.
func IsBadRequest(err error) bool {
	return matchAny(err,
		ErrInvalidTransition, ErrTicketNotClosed, ErrWorkerTeamMismatch,
		ErrNoWorkerTeam, ErrDuplicateMembership, ErrUserUnavailable,
		ErrUsernameTaken, ErrInvalidRole)
}

func matchAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
