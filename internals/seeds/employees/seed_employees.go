package employees

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"attendance_backend/internals/features/employees/employees/model"
)

type EmployeeSeed struct {
	Name   string          `json:"name"`
	Code   string          `json:"emp_code"`
	Role   string          `json:"role"`
	Salary decimal.Decimal `json:"salary"`
}

// SeedEmployeesFromJSON inserts employees whose emp_code is not taken yet.
func SeedEmployeesFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading employees from:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []EmployeeSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, data := range inputs {
		var n int64
		if err := db.Model(&model.EmployeeModel{}).Where("emp_code = ?", data.Code).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("ℹ️ Employee '%s' already exists, skipped.", data.Code)
			continue
		}

		emp := model.EmployeeModel{Name: data.Name, Code: data.Code, Role: data.Role, Salary: data.Salary.Round(2)}
		if err := db.Create(&emp).Error; err != nil {
			log.Printf("❌ Failed to insert employee '%s': %v", data.Code, err)
		} else {
			log.Printf("✅ Inserted employee '%s'", data.Code)
		}
	}
	return nil
}
