package staff

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/models"
)

func isValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func GetStaffAPI(c *fiber.Ctx) error {
	staff, err := database.GetAllStaff(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch staff",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    staff,
		"count":   len(staff),
	})
}

func GetStaffByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid staff ID format. Expected UUID.",
		})
	}

	member, err := database.GetStaffByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch staff member",
		})
	}
	if member == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Staff member not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    member,
	})
}

// GetStaffSalariesAPI returns the disbursement history for one staff member.
func GetStaffSalariesAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid staff ID format. Expected UUID.",
		})
	}

	salaries, err := database.GetStaffSalaries(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch staff salaries",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    salaries,
		"count":   len(salaries),
	})
}

func CreateStaffAPI(c *fiber.Ctx) error {
	var st models.Staff
	if err := c.BodyParser(&st); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if st.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":       false,
			"error":         "Missing required fields",
			"missingFields": []string{"name"},
		})
	}

	if err := database.CreateStaff(db, &st); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create staff member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Staff member created successfully",
		"data":    st,
	})
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid staff ID format. Expected UUID.",
		})
	}

	var patch models.StaffPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	member, err := database.UpdateStaff(db, id, &patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update staff member",
		})
	}
	if member == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Staff member not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Staff member updated successfully",
		"data":    member,
	})
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid staff ID format. Expected UUID.",
		})
	}

	if err := database.DeleteStaff(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Staff member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete staff member",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Staff member deleted successfully",
	})
}
