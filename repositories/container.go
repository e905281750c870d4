package repositories

type Repos struct {
	User       UserRepo
	Team       TeamRepo
	Project    ProjectRepo
	Membership MembershipRepo
	Ticket     TicketRepo
	Attachment AttachmentRepo
	Audit      AuditRepo
}

func New() *Repos {
	return &Repos{
		User:       &DBUserRepo{},
		Team:       &DBTeamRepo{},
		Project:    &DBProjectRepo{},
		Membership: &DBMembershipRepo{},
		Ticket:     &DBTicketRepo{},
		Attachment: &DBAttachmentRepo{},
		Audit:      &DBAuditRepo{},
	}
}
