package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketdesk/models"
	"github.com/linskybing/ticketdesk/repositories"
)

// LogAuditWithConsole records an audit row for a mutating operation. Audit
// failures are logged, never surfaced: the mutation itself already
// committed. Declared as a var so service tests can stub it out.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string,
	oldData, newData interface{}, msg string, repo repositories.AuditRepo) {

	userID, _ := GetUserIDFromContext(c)
	if err := logAudit(c, userID, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
		log.Printf("[LogAudit] error: %v", err)
	}
}

func logAudit(
	c *gin.Context,
	userID uint,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repositories.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	audit := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Description:  description,
	}

	return repo.CreateAuditLog(audit)
}
