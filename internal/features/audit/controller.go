package audit

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	AuditService AuditService
}

func NewAuditController(auditService AuditService) *AuditController {
	return &AuditController{AuditService: auditService}
}

// ListEntries godoc
// @Summary List audit entries
// @Description Get recent audit log entries, optionally filtered by module
// @Tags audit
// @Produce json
// @Param module query string false "Module name"
// @Param limit query int false "Max entries"
// @Success 200 {array} models.AuditLog
// @Router /api/audit [get]
func (ctrl *AuditController) ListEntries(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "100"), 10, 64)

	entries, err := ctrl.AuditService.ListEntries(c.UserContext(), c.Query("module"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error retrieving audit entries",
		})
	}

	return c.JSON(entries)
}
